package utils

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrack-go/internal/authz"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
	"github.com/linskybing/bugtrack-go/pkg/types"
)

// PrincipalFromContext turns the claims set by the JWT middleware into the
// explicit principal threaded through every service call.
var PrincipalFromContext = func(c *gin.Context) (authz.Principal, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return authz.Principal{}, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return authz.Principal{}, errors.New("invalid user claims type")
	}

	return authz.Principal{ID: claims.UserID, Role: user.Role(claims.Role)}, nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", apperrors.ErrValidation, name)
	}
	return uint(id64), nil
}
