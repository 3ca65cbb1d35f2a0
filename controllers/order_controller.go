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

type OrderController struct {
	svc *services.OrderService

	// simulateInterval drives the lifecycle simulator for new orders.
	simulateInterval time.Duration
}

func NewOrderController(svc *services.OrderService, simulateInterval time.Duration) *OrderController {
	return &OrderController{svc: svc, simulateInterval: simulateInterval}
}

type addressIn struct {
	Line1    string `json:"line1" binding:"required"`
	City     string `json:"city" binding:"required"`
	Postcode string `json:"postcode" binding:"required"`
}

type orderItemIn struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Notes    string `json:"notes"`
}

type createOrderReq struct {
	RestaurantID string        `json:"restaurantId" binding:"required"`
	Items        []orderItemIn `json:"items" binding:"required,min=1"`
	Notes        string        `json:"notes"`
	Address      addressIn     `json:"address" binding:"required"`
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restID, err := strconv.ParseUint(req.RestaurantID, 10, 64)
	if err != nil {
		resp.BadRequest(c, "restaurant not found")
		return
	}

	items := make([]services.OrderItemIn, 0, len(req.Items))
	for _, it := range req.Items {
		menuID, err := strconv.ParseUint(it.ItemID, 10, 64)
		if err != nil {
			resp.BadRequest(c, "menu not found")
			return
		}
		items = append(items, services.OrderItemIn{MenuID: uint(menuID), Qty: it.Quantity, Note: it.Notes})
	}

	order, err := oc.svc.Create(uid, &services.CreateOrderReq{
		RestaurantID: uint(restID),
		Items:        items,
		Note:         req.Notes,
		AddressLine1: req.Address.Line1,
		AddressCity:  req.Address.City,
		AddressPost:  req.Address.Postcode,
	})
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	oc.svc.StartAutoAdvance(order.Code, oc.simulateInterval)

	resp.Created(c, gin.H{
		"id":          order.Code,
		"status":      "PLACED",
		"subtotal":    order.Subtotal,
		"deliveryFee": order.DeliveryFee,
		"total":       order.Total,
		"createdAt":   order.CreatedAt.Format(time.RFC3339),
	})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	order, err := oc.svc.Detail(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, toOrderDetailOut(order))
}

type orderItemOut struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

type orderDetailOut struct {
	ID          string         `json:"id"`
	Status      string         `json:"status"`
	Subtotal    float64        `json:"subtotal"`
	DeliveryFee float64        `json:"deliveryFee"`
	Total       float64        `json:"total"`
	Restaurant  restaurantOut  `json:"restaurant"`
	Items       []orderItemOut `json:"items"`
	Address     gin.H          `json:"address"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   string         `json:"createdAt"`
}

func toOrderDetailOut(o *entity.Order) orderDetailOut {
	items := make([]orderItemOut, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, orderItemOut{
			ItemID:   strconv.FormatUint(uint64(it.MenuID), 10),
			Name:     it.Menu.MenuName,
			Price:    it.UnitPrice,
			Quantity: it.Qty,
			Notes:    it.Note,
		})
	}
	return orderDetailOut{
		ID:          o.Code,
		Status:      o.OrderStatus.StatusName,
		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		Total:       o.Total,
		Restaurant:  toRestaurantOut(&o.Restaurant),
		Items:       items,
		Address: gin.H{
			"line1":    o.AddressLine1,
			"city":     o.AddressCity,
			"postcode": o.AddressPost,
		},
		Notes:     o.Note,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
