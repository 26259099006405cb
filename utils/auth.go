package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hallopetra/formbuilder-go/types"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}

	return claims, nil
}
