package models

// Activity กิจกรรมเสริมหลักสูตรของโรงเรียน 1 รายการ
// ชื่อกิจกรรมเป็น key ใน registry จึงไม่เก็บซ้ำใน struct
type Activity struct {
	Description     string   `json:"description" validate:"required" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" validate:"required" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" validate:"gt=0" example:"12"`
	Participants    []string `json:"participants" validate:"dive,required,email"`
}

// HasParticipant เช็คว่า email นี้อยู่ในรายชื่อผู้ลงทะเบียนแล้วหรือยัง
func (a *Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone คืนสำเนาของ Activity พร้อม participants slice ใหม่
// ใช้ตอนทำ snapshot เพื่อไม่ให้ caller แก้ข้อมูลใน registry ได้
func (a *Activity) Clone() Activity {
	copied := *a
	copied.Participants = make([]string, len(a.Participants))
	copy(copied.Participants, a.Participants)
	return copied
}
