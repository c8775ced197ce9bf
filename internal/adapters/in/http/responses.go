package http

import (
	"time"

	"printdrop/internal/core/application/usecases/commands"
	"printdrop/internal/core/application/usecases/queries"
	"printdrop/internal/core/domain/model/document"
	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"
	"printdrop/internal/core/domain/model/user"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type UserSummaryResponse struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

type DocumentResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	FileURL      string    `json:"fileUrl"`
	OriginalName string    `json:"originalName"`
	PageCount    int       `json:"pageCount"`
	Size         string    `json:"size"`
	ColorType    string    `json:"colorType"`
	Binding      bool      `json:"binding"`
	Copies       int       `json:"copies"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OrderResponse carries Documents, Owner and Courier only on list endpoints;
// state-changing endpoints return the ids.
type OrderResponse struct {
	ID              string               `json:"id"`
	OwnerID         string               `json:"ownerId"`
	DocumentIDs     []string             `json:"documentIds"`
	Documents       []DocumentResponse   `json:"documents,omitempty"`
	Owner           *UserSummaryResponse `json:"owner,omitempty"`
	CourierID       *string              `json:"courierId"`
	Courier         *UserSummaryResponse `json:"courier,omitempty"`
	DeliveryAddress string               `json:"deliveryAddress"`
	CustomerName    string               `json:"customerName"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerEmail   string               `json:"customerEmail"`
	PaymentType     string               `json:"paymentType"`
	IsPaid          bool                 `json:"isPaid"`
	TotalAmount     int64                `json:"totalAmount"`
	TotalPaise      int64                `json:"totalPaise"`
	Status          string               `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func userResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Fullname:  u.Fullname(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		Phone:     u.Phone(),
		Address:   u.Address(),
		CreatedAt: u.CreatedAt(),
	}
}

func userViewResponse(v queries.UserView) UserResponse {
	return UserResponse{
		ID:        v.ID.String(),
		Fullname:  v.Fullname,
		Email:     v.Email,
		Role:      v.Role,
		Phone:     v.Phone,
		Address:   v.Address,
		CreatedAt: v.CreatedAt,
	}
}

func loginResponse(r commands.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, ExpiresAt: r.ExpiresAt, User: userResponse(r.User)}
}

func documentResponse(d *document.Document) DocumentResponse {
	opts := d.Options()
	return DocumentResponse{
		ID:           d.ID().String(),
		OwnerID:      d.OwnerID().String(),
		FileURL:      d.FileURL(),
		OriginalName: d.OriginalName(),
		PageCount:    d.PageCount(),
		Size:         string(opts.Size()),
		ColorType:    string(opts.Color()),
		Binding:      opts.Binding(),
		Copies:       opts.Copies(),
		CreatedAt:    d.CreatedAt(),
	}
}

func documentViewResponse(v queries.DocumentView) DocumentResponse {
	return DocumentResponse{
		ID:           v.ID.String(),
		OwnerID:      v.OwnerID.String(),
		FileURL:      v.FileURL,
		OriginalName: v.OriginalName,
		PageCount:    v.PageCount,
		Size:         v.Size,
		ColorType:    v.ColorType,
		Binding:      v.Binding,
		Copies:       v.Copies,
		CreatedAt:    v.CreatedAt,
	}
}

func orderResponse(o *order.Order) OrderResponse {
	ids := o.DocumentIDs()
	docIDs := make([]string, len(ids))
	for i, id := range ids {
		docIDs[i] = id.String()
	}

	var courierID *string
	if c := o.Courier(); c != nil {
		s := c.String()
		courierID = &s
	}

	delivery := o.Delivery()
	return OrderResponse{
		ID:              o.ID().String(),
		OwnerID:         o.OwnerID().String(),
		DocumentIDs:     docIDs,
		CourierID:       courierID,
		DeliveryAddress: delivery.Address(),
		CustomerName:    delivery.CustomerName(),
		CustomerPhone:   delivery.CustomerPhone(),
		CustomerEmail:   delivery.CustomerEmail(),
		PaymentType:     o.PaymentType().String(),
		IsPaid:          o.IsPaid(),
		TotalAmount:     o.Total().Amount(),
		TotalPaise:      o.Total().MinorUnits(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

func orderViewResponse(v queries.OrderView) OrderResponse {
	docIDs := make([]string, len(v.Documents))
	docs := make([]DocumentResponse, len(v.Documents))
	for i, d := range v.Documents {
		docIDs[i] = d.ID.String()
		docs[i] = documentViewResponse(d)
	}

	resp := OrderResponse{
		ID:              v.ID.String(),
		OwnerID:         v.Owner.ID.String(),
		DocumentIDs:     docIDs,
		Documents:       docs,
		Owner:           summaryResponse(&v.Owner),
		DeliveryAddress: v.DeliveryAddress,
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		CustomerEmail:   v.CustomerEmail,
		PaymentType:     v.PaymentType,
		IsPaid:          v.IsPaid,
		TotalAmount:     v.TotalAmount,
		TotalPaise:      paise(v.TotalAmount),
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.Courier != nil {
		id := v.Courier.ID.String()
		resp.CourierID = &id
		resp.Courier = summaryResponse(v.Courier)
	}
	return resp
}

func summaryResponse(s *queries.UserSummary) *UserSummaryResponse {
	return &UserSummaryResponse{ID: s.ID.String(), Fullname: s.Fullname, Email: s.Email}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// paise converts a stored rupee total; values outside kernel.Money's range
// report zero.
func paise(amount int64) int64 {
	m, err := kernel.NewMoney(amount)
	if err != nil {
		return 0
	}
	return m.MinorUnits()
}
