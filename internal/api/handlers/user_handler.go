package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bugtrack-go/internal/application"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
	"github.com/linskybing/bugtrack-go/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "User registration info"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input"})
		return
	}

	usr, err := h.svc.Register(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, usr)
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid input"})
		return
	}

	usr, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token: token,
		UID:   usr.UID,
		Name:  usr.Name,
		Role:  string(usr.Role),
	})
}

// GetUsers godoc
// @Summary List users for ticket assignment
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.DirectoryEntry
// @Failure 500 {object} response.ErrorResponse
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
