package announcement

type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
