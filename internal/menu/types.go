// Package menu builds the localized, ordered sidebar navigation tree from a flat
// collection of documentation pages.
//
// Pages are grouped by their parent path, pruned to the section the reader is
// viewing (Filter), then folded into a tree of Item and SubMenu nodes (Build).
// A SubMenu exists only for groups that match a declared category; undeclared
// intermediate paths are treated as noise and dropped silently.
package menu

import "encoding/json"

// PageRecord is one content page as delivered by the content-query layer.
type PageRecord struct {
	Slug  string `json:"slug" yaml:"slug"`
	Title string `json:"title" yaml:"title"`
	Order int    `json:"order" yaml:"order"`
}

// CategoryDeclaration is a declared menu section. Slug is hierarchy relative
// (for example "api/general"); Title maps language codes to localized titles.
type CategoryDeclaration struct {
	Slug  string            `json:"slug" yaml:"slug"`
	Title map[string]string `json:"title,omitempty" yaml:"title,omitempty"`
	Order int               `json:"order,omitempty" yaml:"order,omitempty"`
}

// LocalizedTitle returns the title for language, or fallback when none is declared.
func (c CategoryDeclaration) LocalizedTitle(language, fallback string) string {
	if t := c.Title[language]; t != "" {
		return t
	}
	return fallback
}

// Kind names a Node variant.
type Kind string

const (
	KindItem    Kind = "item"
	KindSubMenu Kind = "submenu"
)

// Node is a menu tree entry: either *Item or *SubMenu.
type Node interface {
	Kind() Kind
	NodeSlug() string
	NodeTitle() string
	NodeOrder() int
	sealed()
}

// Item links to a single page.
type Item struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

func (*Item) Kind() Kind          { return KindItem }
func (i *Item) NodeSlug() string  { return i.Slug }
func (i *Item) NodeTitle() string { return i.Title }
func (i *Item) NodeOrder() int    { return i.Order }
func (*Item) sealed()             {}

// SubMenu is a declared category. Children may be empty; renderers must not draw
// an empty SubMenu (see Visible).
type SubMenu struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
	Children []Node `json:"children"`
}

func (*SubMenu) Kind() Kind          { return KindSubMenu }
func (s *SubMenu) NodeSlug() string  { return s.Slug }
func (s *SubMenu) NodeTitle() string { return s.Title }
func (s *SubMenu) NodeOrder() int    { return s.Order }
func (*SubMenu) sealed()             {}

// MarshalJSON adds a "type" discriminator.
func (i *Item) MarshalJSON() ([]byte, error) {
	type alias Item
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*alias
	}{KindItem, (*alias)(i)})
}

// MarshalJSON adds a "type" discriminator.
func (s *SubMenu) MarshalJSON() ([]byte, error) {
	type alias SubMenu
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*alias
	}{KindSubMenu, (*alias)(s)})
}
