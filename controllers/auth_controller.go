package controllers

import (
	"strconv"
	"time"

	"foodfront/entity"
	"foodfront/pkg/resp"
	"foodfront/services"
	"foodfront/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userOut struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func toUserOut(u *entity.User) userOut {
	return userOut{
		ID:    strconv.FormatUint(uint64(u.ID), 10),
		Email: u.Email,
		Name:  u.Name,
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"token": token, "user": toUserOut(user)})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": toUserOut(user)})
}

func (ac *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := ac.svc.GetProfile(uid)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id":        strconv.FormatUint(uint64(user.ID), 10),
		"email":     user.Email,
		"name":      user.Name,
		"phone":     user.Phone,
		"createdAt": user.CreatedAt.Format(time.RFC3339),
	})
}
