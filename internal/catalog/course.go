package catalog

// Course is one record from the course catalog dump. The collector's field
// naming is preserved: "category" lists the skills the course teaches,
// "skills" lists the skills it expects you to already have.
type Course struct {
	ID            string   `json:"id" mapstructure:"id"`
	Title         string   `json:"title" mapstructure:"title"`
	Platform      string   `json:"platform" mapstructure:"platform"`
	Covered       []string `json:"category" mapstructure:"category"`
	Prerequisites []string `json:"skills" mapstructure:"skills"`
	Duration      string   `json:"duration" mapstructure:"duration"`
	Level         string   `json:"level" mapstructure:"level"`
	URL           string   `json:"url" mapstructure:"url"`
}

// Courses is an ordered course collection in catalog order.
type Courses struct {
	Items []*Course
}

func (c *Courses) Len() int {
	return len(c.Items)
}

func (c *Courses) FindByID(id string) *Course {
	for _, course := range c.Items {
		if course.ID == id {
			return course
		}
	}
	return nil
}
