package wordpress

// Raw records mirror the WordPress REST API (wp/v2) response shapes. They are
// decoded from the transport's map with mapstructure and never leave this
// package; callers only see the normalized records below.

// Rendered is a rich-text field. WordPress wraps these as
// {"rendered": "...", "raw": "..."}; a bare string is accepted as well.
type Rendered string

type rawPost struct {
	ID            int      `json:"id"`
	Date          string   `json:"date"`
	Link          string   `json:"link"`
	Status        string   `json:"status"`
	Title         Rendered `json:"title"`
	Content       Rendered `json:"content"`
	Excerpt       Rendered `json:"excerpt"`
	Author        int      `json:"author"`
	FeaturedMedia int      `json:"featured_media"`
	Categories    []int    `json:"categories"`
	Tags          []int    `json:"tags"`
	Parent        int      `json:"parent"`   // pages only
	Template      string   `json:"template"` // pages only
}

type rawUser struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Username    string   `json:"username"` // context=edit only
	Slug        string   `json:"slug"`
	Email       string   `json:"email"` // context=edit only
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Roles       []string `json:"roles"` // context=edit only
}

type rawMedia struct {
	ID        int      `json:"id"`
	Date      string   `json:"date"`
	Title     Rendered `json:"title"`
	Caption   Rendered `json:"caption"`
	SourceURL string   `json:"source_url"`
	Link      string   `json:"link"`
	MediaType string   `json:"media_type"`
	MimeType  string   `json:"mime_type"`
	AltText   string   `json:"alt_text"`
	Post      int      `json:"post"`
}

type rawComment struct {
	ID          int      `json:"id"`
	Post        int      `json:"post"`
	Parent      int      `json:"parent"`
	AuthorName  string   `json:"author_name"`
	AuthorEmail string   `json:"author_email"` // context=edit only
	Content     Rendered `json:"content"`
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	Link        string   `json:"link"`
}

type rawTerm struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Parent      int    `json:"parent"` // categories only
	Link        string `json:"link"`
}

type rawIndex struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Home        string   `json:"home"`
	Namespaces  []string `json:"namespaces"`
}

// Normalized records. Missing strings become "", numbers 0 and lists [].

// ContentSummary is returned by post and page create/update.
type ContentSummary struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Link   string `json:"link"`
	Status string `json:"status"`
}

// Post is the full normalized post.
type Post struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	Link          string `json:"link"`
	Author        int    `json:"author"`
	Categories    []int  `json:"categories"`
	Tags          []int  `json:"tags"`
	FeaturedMedia int    `json:"featured_media"`
}

// PostItem is a post as it appears in a list.
type PostItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status"`
	Date    string `json:"date"`
	Link    string `json:"link"`
}

// Page is the full normalized page.
type Page struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Link     string `json:"link"`
	Parent   int    `json:"parent"`
	Template string `json:"template"`
}

// PageItem is a page as it appears in a list.
type PageItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status"`
	Date    string `json:"date"`
	Link    string `json:"link"`
	Parent  int    `json:"parent"`
}

// User is the full normalized user.
type User struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Roles       []string `json:"roles"`
}

// UserItem is a user as it appears in a list.
type UserItem struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Link     string   `json:"link"`
	Roles    []string `json:"roles"`
}

// UserSummary is returned by user create/update.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Media is a normalized attachment.
type Media struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	SourceURL string `json:"source_url"`
	Link      string `json:"link"`
	MediaType string `json:"media_type"`
	MimeType  string `json:"mime_type"`
	AltText   string `json:"alt_text"`
}

// Comment is the full normalized comment.
type Comment struct {
	ID          int    `json:"id"`
	Post        int    `json:"post"`
	Parent      int    `json:"parent"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Link        string `json:"link"`
}

// CommentItem is a comment as it appears in a list.
type CommentItem struct {
	ID         int    `json:"id"`
	Post       int    `json:"post"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Link       string `json:"link"`
}

// CommentSummary is returned by comment create/update.
type CommentSummary struct {
	ID         int    `json:"id"`
	Post       int    `json:"post"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	Status     string `json:"status"`
}

// Category is a normalized category term.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Parent      int    `json:"parent"`
}

// Tag is a normalized tag term.
type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// TermSummary is returned by category and tag create/update.
type TermSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SiteInfo combines the REST index with the authenticated user.
type SiteInfo struct {
	URL            string       `json:"url"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Home           string       `json:"home"`
	Namespaces     []string     `json:"namespaces"`
	Authentication AuthInfo     `json:"authentication"`
	CurrentUser    *CurrentUser `json:"current_user"`
}

// AuthInfo reports which account the server authenticates as.
type AuthInfo struct {
	Enabled  bool   `json:"enabled"`
	Username string `json:"username"`
}

// CurrentUser is the account behind the application password.
type CurrentUser struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// DeleteOutcome reports what a delete did on the remote side.
type DeleteOutcome struct {
	Deleted bool
	Trashed bool
}
