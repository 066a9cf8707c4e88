package models

// Employee is a read-only record from the remote catalog API.
type Employee struct {
	ID          int    `json:"employee_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	PinNum      int    `json:"pin_num"`
	PinCode     int    `json:"pin_code"`
	AccessLevel int    `json:"access_level"`
	Role        string `json:"role"`
}

// Menu is a menu definition from the remote catalog API.
type Menu struct {
	ID        int    `json:"menu_id"`
	Name      string `json:"menu_name"`
	StartTime string `json:"menu_start_time"`
	EndTime   string `json:"menu_end_time"`
	Days      string `json:"menu_days"`
}

// MenuItem is a menu item from the remote catalog API.
type MenuItem struct {
	ID          int     `json:"menu_items_id"`
	Name        string  `json:"menu_item_name"`
	Description string  `json:"menu_item_desc"`
	Price       float64 `json:"menu_item_price"`
	Stock       int     `json:"menu_item_stock"`
	ParentID    int     `json:"menu_item_parent"`
	MainGroup   int     `json:"menu_main"`
}
