package models

import (
	"github.com/shopspring/decimal"
)

// PaymentSettingID pins the display-only payment settings to one row, the
// same way the site settings singleton works.
const PaymentSettingID uint = 1

type PaymentSetting struct {
	ID             uint            `gorm:"primaryKey" json:"-"`
	Title          string          `gorm:"size:150;default:Payment" json:"title"`
	Description    string          `gorm:"type:text" json:"description"`
	ButtonLabel    string          `gorm:"size:100;default:Pay" json:"button_label"`
	SuccessMessage string          `gorm:"size:200" json:"success_message"`
	Enabled        bool            `gorm:"default:true" json:"enabled"`
	RequireLogin   bool            `gorm:"default:false" json:"require_login"`
	TestMode       bool            `gorm:"default:true" json:"test_mode"`
	GatewayName    string          `gorm:"size:100;default:Demo" json:"gateway_name"`
	Currency       string          `gorm:"size:10;default:USD" json:"currency"`
	FixedFee       decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"fixed_fee"`
	FeePercent     decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"fee_percent"`
}

func DefaultPaymentSetting() PaymentSetting {
	return PaymentSetting{
		ID:             PaymentSettingID,
		Title:          "Payment",
		Description:    "Demo payment form. Integrate your gateway later.",
		ButtonLabel:    "Pay",
		SuccessMessage: "Payment successful! Thank you for your order.",
		Enabled:        true,
		TestMode:       true,
		GatewayName:    "Demo",
		Currency:       "USD",
	}
}

type PaymentGateway struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	DisplayName string `gorm:"size:150" json:"display_name"`
	Code        string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
	TestMode    bool   `gorm:"default:true" json:"test_mode"`
	ButtonLabel string `gorm:"size:100;default:Pay" json:"button_label"`
	Order       uint   `gorm:"column:display_order;default:0" json:"order"`
	ConfigJSON  string `gorm:"type:text" json:"-"`
}
