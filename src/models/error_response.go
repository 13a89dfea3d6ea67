package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error กลับไปยัง Client
type ErrorResponse struct {
	Detail string `json:"detail" example:"Activity not found"`
}

// SuccessResponse โครงสร้าง JSON Response เมื่อทำรายการสำเร็จ
type SuccessResponse struct {
	Message string `json:"message" example:"Signed up michael@mergington.edu for Chess Club"`
}
