package wordpress

// Projections from raw records to normalized records. They are pure: the same
// raw record always yields the same normalized keys and values.

func projectPost(r rawPost) Post {
	return Post{
		ID:            r.ID,
		Title:         string(r.Title),
		Content:       string(r.Content),
		Excerpt:       string(r.Excerpt),
		Status:        r.Status,
		Date:          r.Date,
		Link:          r.Link,
		Author:        r.Author,
		Categories:    orEmpty(r.Categories),
		Tags:          orEmpty(r.Tags),
		FeaturedMedia: r.FeaturedMedia,
	}
}

func projectPostItem(r rawPost) PostItem {
	return PostItem{
		ID:      r.ID,
		Title:   string(r.Title),
		Excerpt: string(r.Excerpt),
		Status:  r.Status,
		Date:    r.Date,
		Link:    r.Link,
	}
}

func projectContentSummary(r rawPost) ContentSummary {
	return ContentSummary{
		ID:     r.ID,
		Title:  string(r.Title),
		Link:   r.Link,
		Status: r.Status,
	}
}

func projectPage(r rawPost) Page {
	return Page{
		ID:       r.ID,
		Title:    string(r.Title),
		Content:  string(r.Content),
		Excerpt:  string(r.Excerpt),
		Status:   r.Status,
		Date:     r.Date,
		Link:     r.Link,
		Parent:   r.Parent,
		Template: r.Template,
	}
}

func projectPageItem(r rawPost) PageItem {
	return PageItem{
		ID:      r.ID,
		Title:   string(r.Title),
		Excerpt: string(r.Excerpt),
		Status:  r.Status,
		Date:    r.Date,
		Link:    r.Link,
		Parent:  r.Parent,
	}
}

// username falls back to the slug outside the edit context.
func (r rawUser) username() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Slug
}

func projectUser(r rawUser) User {
	return User{
		ID:          r.ID,
		Name:        r.Name,
		Username:    r.username(),
		Email:       r.Email,
		URL:         r.URL,
		Description: r.Description,
		Link:        r.Link,
		Roles:       orEmpty(r.Roles),
	}
}

func projectUserItem(r rawUser) UserItem {
	return UserItem{
		ID:       r.ID,
		Name:     r.Name,
		Username: r.username(),
		Email:    r.Email,
		Link:     r.Link,
		Roles:    orEmpty(r.Roles),
	}
}

func projectUserSummary(r rawUser) UserSummary {
	return UserSummary{
		ID:       r.ID,
		Username: r.username(),
		Email:    r.Email,
		Name:     r.Name,
	}
}

func projectCurrentUser(r rawUser) *CurrentUser {
	return &CurrentUser{
		ID:       r.ID,
		Name:     r.Name,
		Username: r.username(),
		Roles:    orEmpty(r.Roles),
	}
}

func projectMedia(r rawMedia) Media {
	return Media{
		ID:        r.ID,
		Title:     string(r.Title),
		SourceURL: r.SourceURL,
		Link:      r.Link,
		MediaType: r.MediaType,
		MimeType:  r.MimeType,
		AltText:   r.AltText,
	}
}

func projectComment(r rawComment) Comment {
	return Comment{
		ID:          r.ID,
		Post:        r.Post,
		Parent:      r.Parent,
		AuthorName:  r.AuthorName,
		AuthorEmail: r.AuthorEmail,
		Content:     string(r.Content),
		Date:        r.Date,
		Status:      r.Status,
		Link:        r.Link,
	}
}

func projectCommentItem(r rawComment) CommentItem {
	return CommentItem{
		ID:         r.ID,
		Post:       r.Post,
		AuthorName: r.AuthorName,
		Content:    string(r.Content),
		Date:       r.Date,
		Status:     r.Status,
		Link:       r.Link,
	}
}

func projectCommentSummary(r rawComment) CommentSummary {
	return CommentSummary{
		ID:         r.ID,
		Post:       r.Post,
		AuthorName: r.AuthorName,
		Content:    string(r.Content),
		Status:     r.Status,
	}
}

func projectCategory(r rawTerm) Category {
	return Category{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Count:       r.Count,
		Parent:      r.Parent,
	}
}

func projectTag(r rawTerm) Tag {
	return Tag{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Count:       r.Count,
	}
}

func projectTermSummary(r rawTerm) TermSummary {
	return TermSummary{ID: r.ID, Name: r.Name, Slug: r.Slug}
}

// projectAll maps a projection over a page of raw records. The result is
// never nil so an empty page serializes as [].
func projectAll[R, N any](items []R, project func(R) N) []N {
	out := make([]N, 0, len(items))
	for _, item := range items {
		out = append(out, project(item))
	}
	return out
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
