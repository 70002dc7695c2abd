package apperrors

import (
	"errors"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUnauthorized         = errors.New("access token is required")
	ErrTokenInvalid         = errors.New("token is invalid")
	ErrTokenExpired         = errors.New("token is expired")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrRefreshTokenRequired = errors.New("refresh token is required")
	ErrForbidden            = errors.New("not the resource owner")

	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrAlreadySaved          = errors.New("recipe already saved")
	ErrNotSaved              = errors.New("recipe not saved")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrParentCommentNotFound = errors.New("parent comment not found")

	ErrCannotFollowSelf = errors.New("user can't follow themselves")
	ErrAlreadyFollowing = errors.New("already following user")
	ErrNotFollowing     = errors.New("not following user")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNothingToUpdate  = errors.New("nothing to update")
)
