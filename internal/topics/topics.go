package topics

// Topic is a subject-matter selector that contextualizes both the chat and
// quiz sessions. Topics come from the fixed grade-12 syllabus catalog.
type Topic struct {
	ID          string
	Name        string
	Description string
	Grade       int
}

// SelectedMsg announces a topic change. It is delivered to screens as a
// discrete Bubble Tea message; sessions never originate topic changes.
type SelectedMsg struct {
	Topic Topic
}

// Catalog is the grade-12 physics syllabus.
var Catalog = []Topic{
	{ID: "mechanics", Name: "Cơ học", Description: "Động lực học, Dao động cơ, Sóng cơ", Grade: 12},
	{ID: "electricity", Name: "Điện học", Description: "Dòng điện xoay chiều, Dao động điện từ", Grade: 12},
	{ID: "waves", Name: "Sóng ánh sáng", Description: "Giao thoa, Tán sắc, Quang phổ", Grade: 12},
	{ID: "nuclear", Name: "Vật lý hạt nhân", Description: "Phóng xạ, Phản ứng nhiệt hạch", Grade: 12},
}

// Find returns the catalog topic with the given ID.
func Find(id string) (Topic, bool) {
	for _, t := range Catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// Next returns the catalog topic after the given one, wrapping around.
// When current is nil, the first catalog topic is returned.
func Next(current *Topic) Topic {
	if current == nil {
		return Catalog[0]
	}
	for i, t := range Catalog {
		if t.ID == current.ID {
			return Catalog[(i+1)%len(Catalog)]
		}
	}
	return Catalog[0]
}
