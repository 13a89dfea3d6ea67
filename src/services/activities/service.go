package activities

import (
	"fmt"

	"Backend-Mergington-API/src/models"
	"Backend-Mergington-API/src/store"
)

// Service ชั้น business logic ของกิจกรรม ครอบ ActivityRegistry
// รับ registry ผ่าน constructor ไม่ใช้ตัวแปร global
type Service struct {
	registry *store.ActivityRegistry
}

// NewService สร้าง Service พร้อม registry ที่จะใช้
func NewService(registry *store.ActivityRegistry) *Service {
	return &Service{registry: registry}
}

// GetAllActivities ดึงกิจกรรมทั้งหมด (name -> activity)
func (s *Service) GetAllActivities() map[string]models.Activity {
	return s.registry.GetAll()
}

// SignupStudent ลงทะเบียนนักเรียนเข้ากิจกรรม คืนข้อความยืนยันเมื่อสำเร็จ
// error ที่ได้มาจาก registry โดยตรง (ErrActivityNotFound / ErrAlreadySignedUp)
func (s *Service) SignupStudent(activityName, email string) (string, error) {
	if err := s.registry.Signup(activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// UnregisterStudent ยกเลิกการลงทะเบียน คืนข้อความยืนยันเมื่อสำเร็จ
// error ที่ได้มาจาก registry โดยตรง (ErrActivityNotFound / ErrNotSignedUp)
func (s *Service) UnregisterStudent(activityName, email string) (string, error) {
	if err := s.registry.Unregister(activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
