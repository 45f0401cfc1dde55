package theme

import "sync"

// Provider resolves a brightness to the consumer's theme and to the sidebar
// theme used for the storybook chrome. Both results depend only on b. The
// returned theme is shared by every view and must be treated as read-only.
type Provider[T any] interface {
	Theme(b Brightness) *T
	SidebarTheme(b Brightness) SidebarTheme
}

// DefaultSidebar can be embedded in a Provider that has no sidebar styling
// of its own.
type DefaultSidebar struct{}

func (DefaultSidebar) SidebarTheme(b Brightness) SidebarTheme {
	return DefaultSidebarTheme(b)
}

// Memo builds at most one value per brightness and hands out the same
// pointer afterwards. It is safe for concurrent use.
type Memo[T any] struct {
	build func(Brightness) T
	once  [2]sync.Once
	vals  [2]T
}

// NewMemo returns a Memo that calls build lazily, once per brightness.
func NewMemo[T any](build func(Brightness) T) *Memo[T] {
	return &Memo[T]{build: build}
}

func (m *Memo[T]) Get(b Brightness) *T {
	i := b.index()
	m.once[i].Do(func() {
		m.vals[i] = m.build([2]Brightness{Dark, Light}[i])
	})
	return &m.vals[i]
}

type memoProvider[T any] struct {
	DefaultSidebar
	themes *Memo[T]
}

func (p memoProvider[T]) Theme(b Brightness) *T { return p.themes.Get(b) }

// NewProvider returns a Provider that builds each theme on first use and
// pairs it with the default sidebar.
func NewProvider[T any](build func(Brightness) T) Provider[T] {
	return memoProvider[T]{themes: NewMemo(build)}
}
