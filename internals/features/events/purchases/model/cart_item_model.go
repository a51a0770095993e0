package model

import (
	"time"

	"github.com/google/uuid"
)

type CartItemModel struct {
	CartItemID        uuid.UUID `gorm:"column:cart_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cart_item_id"`
	CartItemUserID    uuid.UUID `gorm:"column:cart_item_user_id;type:uuid;not null;uniqueIndex:uq_cart_user_session" json:"cart_item_user_id"`
	CartItemSessionID uuid.UUID `gorm:"column:cart_item_session_id;type:uuid;not null;uniqueIndex:uq_cart_user_session" json:"cart_item_session_id"`
	CartItemCreatedAt time.Time `gorm:"column:cart_item_created_at;autoCreateTime" json:"cart_item_created_at"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
