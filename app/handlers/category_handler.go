package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"shopfront/app/models"
	"shopfront/app/repositories"

	"github.com/unrolled/render"
)

type CategoryNode struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Parent   *uint          `json:"parent"`
	Children []CategoryNode `json:"children"`
}

type CategoryInput struct {
	Name   string `json:"name"`
	Parent *uint  `json:"parent"`
}

type CategoryHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryHandler(renderer *render.Render, categoryRepo repositories.CategoryRepositoryImpl) *CategoryHandler {
	return &CategoryHandler{render: renderer, categoryRepo: categoryRepo}
}

// buildTree assembles the category forest from a flat, name-ordered list.
func buildTree(categories []models.Category) []CategoryNode {
	children := map[uint][]models.Category{}
	var roots []models.Category
	for _, c := range categories {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var build func(c models.Category) CategoryNode
	build = func(c models.Category) CategoryNode {
		node := CategoryNode{ID: c.ID, Name: c.Name, Parent: c.ParentID, Children: []CategoryNode{}}
		for _, child := range children[c.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	nodes := []CategoryNode{}
	for _, root := range roots {
		nodes = append(nodes, build(root))
	}
	return nodes
}

func (h *CategoryHandler) ListGet(w http.ResponseWriter, r *http.Request) {
	roots, err := h.categoryRepo.GetRoots(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.ListGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to list categories"})
		return
	}
	h.render.JSON(w, http.StatusOK, roots)
}

func (h *CategoryHandler) TreeGet(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.TreeGet: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to list categories"})
		return
	}
	h.render.JSON(w, http.StatusOK, buildTree(categories))
}

func (h *CategoryHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "name is required"})
		return
	}
	category := &models.Category{Name: input.Name, ParentID: input.Parent}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSibling) {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
			return
		}
		log.Printf("CategoryHandler.CreatePost: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to create category"})
		return
	}
	h.render.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) UpdatePut(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid category id"})
		return
	}
	existing, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.UpdatePut: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to load category"})
		return
	}
	if existing == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"detail": "Not found"})
		return
	}

	var input CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "name is required"})
		return
	}
	existing.Name = input.Name
	existing.ParentID = input.Parent
	if err := h.categoryRepo.Update(r.Context(), existing); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSibling) {
			h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
			return
		}
		log.Printf("CategoryHandler.UpdatePut: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to update category"})
		return
	}
	h.render.JSON(w, http.StatusOK, existing)
}

func (h *CategoryHandler) DeleteDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid category id"})
		return
	}
	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		log.Printf("CategoryHandler.DeleteDelete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"detail": "Failed to delete category"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
