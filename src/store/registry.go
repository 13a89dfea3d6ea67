package store

import (
	"errors"
	"sync"

	"Backend-Mergington-API/src/models"
)

// Error หลักของ registry ให้ controller เอาไป map เป็น HTTP status
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up for this activity")
	ErrNotSignedUp      = errors.New("student not signed up for this activity")
)

// ActivityRegistry เก็บกิจกรรมทั้งหมดไว้ใน memory (ไม่มี database)
// Fiber รัน handler หลาย goroutine พร้อมกัน จึงต้องมี RWMutex
// ครอบทุกการอ่าน/เขียน เพื่อกันลงทะเบียนซ้ำจาก request ที่ชนกัน
type ActivityRegistry struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
}

// NewActivityRegistry สร้าง registry จาก seed ที่เตรียมไว้
// registry ถูกสร้างครั้งเดียวตอน start process แล้วส่งต่อให้ service ใช้
func NewActivityRegistry(seed map[string]*models.Activity) *ActivityRegistry {
	activities := make(map[string]*models.Activity, len(seed))
	for name, activity := range seed {
		copied := activity.Clone()
		activities[name] = &copied
	}
	return &ActivityRegistry{activities: activities}
}

// GetAll คืน snapshot ของกิจกรรมทั้งหมด (name -> activity)
// ทุก record ถูก copy ออกมา ผู้เรียก serialize ได้โดยไม่ชนกับ writer
func (r *ActivityRegistry) GetAll() map[string]models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]models.Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot
}

// Get คืนสำเนาของกิจกรรมตามชื่อ
func (r *ActivityRegistry) Get(name string) (models.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return models.Activity{}, ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// Count จำนวนกิจกรรมใน registry
func (r *ActivityRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// Signup เพิ่ม email เข้า participants ของกิจกรรม
// เช็คและแก้ไขภายใต้ lock เดียวกันทั้งก้อน email จึงไม่มีทางซ้ำ
// MaxParticipants เป็นตัวเลขสำหรับแสดงผลเท่านั้น ไม่ได้บังคับตอนสมัคร
func (r *ActivityRegistry) Signup(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister ลบ email ออกจาก participants ของกิจกรรม
func (r *ActivityRegistry) Unregister(activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotSignedUp
}
