package service

import "errors"

// 服务层错误
var (
	ErrSessionInvalid   = errors.New("session invalid")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCartItemInvalid  = errors.New("cart item invalid")
)
