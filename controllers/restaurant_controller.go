package controllers

import (
	"strconv"

	"foodfront/entity"
	"foodfront/pkg/resp"
	"foodfront/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{svc: svc}
}

type restaurantOut struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Address     string  `json:"address,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Rating      float64 `json:"rating"`
	DeliveryFee float64 `json:"deliveryFee"`
}

type menuItemOut struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

func toRestaurantOut(r *entity.Restaurant) restaurantOut {
	return restaurantOut{
		ID:          strconv.FormatUint(uint64(r.ID), 10),
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Address:     r.Address,
		ImageURL:    r.Picture,
		Rating:      r.Rating,
		DeliveryFee: r.DeliveryFee,
	}
}

func toMenuItemOut(m *entity.Menu) menuItemOut {
	return menuItemOut{
		ID:          strconv.FormatUint(uint64(m.ID), 10),
		Name:        m.MenuName,
		Description: m.Detail,
		Category:    m.Category,
		Price:       m.Price,
		ImageURL:    m.Picture,
	}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	rests, err := rc.svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]restaurantOut, 0, len(rests))
	for i := range rests {
		out = append(out, toRestaurantOut(&rests[i]))
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	rest, err := rc.svc.Detail(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	menu := make([]menuItemOut, 0, len(rest.Menus))
	for i := range rest.Menus {
		menu = append(menu, toMenuItemOut(&rest.Menus[i]))
	}

	out := struct {
		restaurantOut
		Menu []menuItemOut `json:"menu"`
	}{toRestaurantOut(rest), menu}
	resp.OK(c, out)
}
