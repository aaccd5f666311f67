package response

import (
	"time"

	"academy/internal/domain/entity"
	"academy/internal/usecase"

	"github.com/shopspring/decimal"
)

// UserView is the public shape of a user. The password hash is never included.
type UserView struct {
	ID               uint      `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	ProfilePicture   *string   `json:"profile_picture"`
	CreatedAt        time.Time `json:"created_at"`
	OwnedCourses     []uint    `json:"owned_courses"`
	FavouriteCourses []uint    `json:"favourite_courses"`
	SavedBlogs       []uint    `json:"saved_blogs"`
}

// UserDetailsView is a user with its lists resolved.
type UserDetailsView struct {
	ID               uint         `json:"id"`
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	Role             string       `json:"role"`
	ProfilePicture   *string      `json:"profile_picture"`
	CreatedAt        time.Time    `json:"created_at"`
	OwnedCourses     []CourseView `json:"owned_courses"`
	FavouriteCourses []CourseView `json:"favourite_courses"`
	SavedBlogs       []BlogView   `json:"saved_blogs"`
}

// UserRefView identifies the buyer on an invoice.
type UserRefView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CourseView is the public shape of a course. Money is rendered as a number.
type CourseView struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Price       float64               `json:"price"`
	Discount    float64               `json:"discount"`
	FinalPrice  float64               `json:"final_price"`
	Language    string                `json:"language"`
	Topic       string                `json:"topic"`
	Level       string                `json:"level"`
	Description string                `json:"description"`
	Tags        []entity.Tag          `json:"tags"`
	Summary     *entity.CourseSummary `json:"summary"`
	Content     []entity.Lesson       `json:"content"`
	ImageURL    string                `json:"image_url"`
	ImageAlt    string                `json:"image_alt"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// BlogView is the public shape of a blog post.
type BlogView struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	AuthorName      string       `json:"author_name"`
	Email           string       `json:"email"`
	URL             string       `json:"url"`
	Description     string       `json:"description"`
	Tags            []entity.Tag `json:"tags"`
	ImageURL        string       `json:"image_url"`
	ImageAlt        string       `json:"image_alt"`
	PublicationDate time.Time    `json:"publication_date"`
}

// ContactView is a stored contact-form message.
type ContactView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Messages  string    `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

// PurchaseView is one ledger row.
type PurchaseView struct {
	ID              uint        `json:"id"`
	UserID          uint        `json:"user_id"`
	CourseID        uint        `json:"course_id"`
	PricePaid       float64     `json:"price_paid"`
	DiscountApplied float64     `json:"discount_applied"`
	FinalPrice      float64     `json:"final_price"`
	InvoiceNumber   string      `json:"invoice_number"`
	PurchaseDate    time.Time   `json:"purchase_date"`
	Course          *CourseView `json:"course,omitempty"`
}

// InvoiceView is a ledger row with its buyer and the current course.
type InvoiceView struct {
	PurchaseView
	User *UserRefView `json:"user"`
}

// PurchaseResultView is the body of a successful purchase.
type PurchaseResultView struct {
	Message        string         `json:"message"`
	Purchases      []PurchaseView `json:"purchases"`
	InvoiceNumbers []string       `json:"invoice_numbers"`
	User           UserView       `json:"user"`
}

// AuthView carries a bearer token and its user.
type AuthView struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func ids(v []uint) []uint {
	if v == nil {
		return []uint{}
	}

	return v
}

// NewUserView converts a user.
func NewUserView(user *entity.User) UserView {
	return UserView{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             user.Role.String(),
		ProfilePicture:   optional(user.ProfilePicture),
		CreatedAt:        user.CreatedAt,
		OwnedCourses:     ids(user.OwnedCourses),
		FavouriteCourses: ids(user.FavouriteCourses),
		SavedBlogs:       ids(user.SavedBlogs),
	}
}

// NewUserViews converts a list of users.
func NewUserViews(users []*entity.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, NewUserView(u))
	}

	return views
}

// NewUserDetailsView converts a user with resolved lists.
func NewUserDetailsView(details *usecase.UserDetails) UserDetailsView {
	user := details.User

	return UserDetailsView{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             user.Role.String(),
		ProfilePicture:   optional(user.ProfilePicture),
		CreatedAt:        user.CreatedAt,
		OwnedCourses:     NewCourseViews(details.OwnedCourses),
		FavouriteCourses: NewCourseViews(details.FavouriteCourses),
		SavedBlogs:       NewBlogViews(details.SavedBlogs),
	}
}

// NewCourseView converts a course.
func NewCourseView(course *entity.Course) CourseView {
	view := CourseView{
		ID:          course.ID,
		Name:        course.Name,
		Price:       money(course.Price),
		Discount:    money(course.Discount),
		FinalPrice:  money(course.FinalPrice()),
		Language:    course.Language,
		Topic:       course.Topic,
		Level:       course.Level,
		Description: course.Description,
		Tags:        course.Tags,
		Summary:     course.Summary,
		Content:     course.Content,
		ImageURL:    course.ImageURL,
		ImageAlt:    course.ImageAlt,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
	if view.Tags == nil {
		view.Tags = []entity.Tag{}
	}

	return view
}

// NewCourseViews converts a list of courses.
func NewCourseViews(courses []*entity.Course) []CourseView {
	views := make([]CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, NewCourseView(c))
	}

	return views
}

// NewBlogView converts a blog.
func NewBlogView(blog *entity.Blog) BlogView {
	view := BlogView{
		ID:              blog.ID,
		Title:           blog.Title,
		AuthorName:      blog.AuthorName,
		Email:           blog.Email,
		URL:             blog.URL,
		Description:     blog.Description,
		Tags:            blog.Tags,
		ImageURL:        blog.ImageURL,
		ImageAlt:        blog.ImageAlt,
		PublicationDate: blog.PublicationDate,
	}
	if view.Tags == nil {
		view.Tags = []entity.Tag{}
	}

	return view
}

// NewBlogViews converts a list of blogs.
func NewBlogViews(blogs []*entity.Blog) []BlogView {
	views := make([]BlogView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, NewBlogView(b))
	}

	return views
}

// NewContactViews converts contact messages.
func NewContactViews(contacts []*entity.Contact) []ContactView {
	views := make([]ContactView, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, NewContactView(c))
	}

	return views
}

// NewContactView converts a contact message.
func NewContactView(contact *entity.Contact) ContactView {
	return ContactView{
		ID:        contact.ID,
		Email:     contact.Email,
		Messages:  contact.Messages,
		CreatedAt: contact.CreatedAt,
	}
}

// NewPurchaseView converts a ledger row. The course is embedded when loaded.
func NewPurchaseView(purchase *entity.Purchase) PurchaseView {
	view := PurchaseView{
		ID:              purchase.ID,
		UserID:          purchase.UserID,
		CourseID:        purchase.CourseID,
		PricePaid:       money(purchase.PricePaid),
		DiscountApplied: money(purchase.DiscountApplied),
		FinalPrice:      money(purchase.FinalPrice),
		InvoiceNumber:   purchase.InvoiceNumber,
		PurchaseDate:    purchase.PurchaseDate,
	}
	if purchase.Course != nil {
		course := NewCourseView(purchase.Course)
		view.Course = &course
	}

	return view
}

// NewPurchaseViews converts ledger rows.
func NewPurchaseViews(purchases []*entity.Purchase) []PurchaseView {
	views := make([]PurchaseView, 0, len(purchases))
	for _, p := range purchases {
		views = append(views, NewPurchaseView(p))
	}

	return views
}

// NewInvoiceView converts an invoice. Money comes from the ledger row.
func NewInvoiceView(invoice *entity.Invoice) InvoiceView {
	view := InvoiceView{PurchaseView: NewPurchaseView(invoice.Purchase)}
	if invoice.Course != nil {
		course := NewCourseView(invoice.Course)
		view.Course = &course
	}
	if invoice.User != nil {
		view.User = &UserRefView{
			ID:       invoice.User.ID,
			Username: invoice.User.Username,
			Email:    invoice.User.Email,
		}
	}

	return view
}

// NewPurchaseResultView converts a committed purchase.
func NewPurchaseResultView(output *usecase.PurchaseOutput) PurchaseResultView {
	return PurchaseResultView{
		Message:        "Purchase successful",
		Purchases:      NewPurchaseViews(output.Purchases),
		InvoiceNumbers: output.InvoiceNumbers,
		User:           NewUserView(output.User),
	}
}

// NewAuthView converts a login or signup result.
func NewAuthView(output *usecase.AuthOutput) AuthView {
	return AuthView{Token: output.Token, User: NewUserView(output.User)}
}
