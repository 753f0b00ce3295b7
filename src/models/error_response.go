package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Detail string `json:"detail" example:"Activity not found"` // รายละเอียดของ Error
}

// MessageResponse ผลลัพธ์เมื่อทำรายการสำเร็จ
type MessageResponse struct {
	Message string `json:"message" example:"Signed up newstudent@mergington.edu for Basketball Club"`
}

// HealthResponse สถานะของ service
type HealthResponse struct {
	Status     string `json:"status" example:"ok"`
	Activities int    `json:"activities" example:"9"`
	Redis      string `json:"redis" example:"disabled"`
}
