package service

import (
	"Blackout/pkg/response"
	"Blackout/pkg/upload"
	"errors"
	"net/http"
)

var (
	ErrUserNotFound    = response.NewError(http.StatusNotFound, "User not found")
	ErrPostNotFound    = response.NewError(http.StatusNotFound, "Post not found")
	ErrUsernameTaken   = response.NewError(http.StatusBadRequest, "Username already taken")
	ErrEmailRegistered = response.NewError(http.StatusBadRequest, "Email already registered")
	ErrAlreadyExists   = response.NewError(http.StatusBadRequest, "Username or email already registered")
	ErrUsernameTooLong = response.NewError(http.StatusBadRequest, "Username must be at most 20 characters")
	ErrLoginFailed     = response.NewError(http.StatusUnauthorized, "Login failed. Check email and password")
	ErrFieldsRequired  = response.NewError(http.StatusBadRequest, "All fields are required")
	ErrInvalidImage    = response.NewError(http.StatusBadRequest, "Invalid image file")
	ErrImageTooLarge   = response.NewError(http.StatusRequestEntityTooLarge, "File too large")
	ErrInvalidPrice    = response.NewError(http.StatusBadRequest, "Price must be a whole number")
	ErrSelfFollow      = response.NewError(http.StatusBadRequest, "Cannot follow yourself")
	ErrEmptyComment    = response.NewError(http.StatusBadRequest, "Comment cannot be empty")
	ErrNotPostOwner    = response.NewError(http.StatusForbidden, "You can only delete your own posts")
)

// imageError 上传错误转业务错误
func imageError(err error) error {
	switch {
	case errors.Is(err, upload.ErrMissingImage):
		return ErrFieldsRequired
	case errors.Is(err, upload.ErrInvalidImage):
		return ErrInvalidImage
	case errors.Is(err, upload.ErrImageTooLarge):
		return ErrImageTooLarge
	}
	return err
}
