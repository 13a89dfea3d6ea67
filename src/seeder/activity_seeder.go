package seeder

import (
	"fmt"
	"strings"

	"Backend-Mergington-API/src/models"
	"Backend-Mergington-API/src/store"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SeedActivities ข้อมูลกิจกรรมตั้งต้นทั้ง 9 รายการของโรงเรียน
// คืน map ใหม่ทุกครั้ง ผู้เรียกแก้ไขได้โดยไม่กระทบ seed ของคนอื่น
func SeedActivities() map[string]*models.Activity {
	return map[string]*models.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice and play basketball with the school team",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
	}
}

// ValidateSeed ตรวจ seed ทุก record ก่อนเปิดเซิร์ฟเวอร์ (fail fast)
// เช็ค struct tag ด้วย validator แล้วเช็ค email ซ้ำในกิจกรรมเดียวกันเพิ่มเอง
func ValidateSeed(activities map[string]*models.Activity) error {
	for name, activity := range activities {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("seed มีกิจกรรมที่ชื่อว่าง")
		}
		if err := validate.Struct(activity); err != nil {
			return fmt.Errorf("กิจกรรม %q ข้อมูลไม่ถูกต้อง: %w", name, err)
		}

		seen := make(map[string]bool, len(activity.Participants))
		for _, email := range activity.Participants {
			if seen[email] {
				return fmt.Errorf("กิจกรรม %q มี email ซ้ำ: %s", name, email)
			}
			seen[email] = true
		}
	}
	return nil
}

// NewSeededRegistry สร้าง ActivityRegistry จาก seed ที่ผ่านการ validate แล้ว
// ใช้ทั้งตอน start จริงใน main และตอนสร้าง registry สดใน test
func NewSeededRegistry() (*store.ActivityRegistry, error) {
	activities := SeedActivities()
	if err := ValidateSeed(activities); err != nil {
		return nil, err
	}
	return store.NewActivityRegistry(activities), nil
}
