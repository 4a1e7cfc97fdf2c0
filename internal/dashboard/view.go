package dashboard

// View is the declarative description of one rendered page.
type View struct {
	Page   Page
	Title  string
	Blocks []Block
}

// Block is one element of a View. The set of block types is closed.
type Block interface {
	block()
}

// Heading is a section title; Level 2 is a page section, 3 a subsection.
type Heading struct {
	Text  string
	Level int
}

// Paragraph is body text; Subtle paragraphs are captions.
type Paragraph struct {
	Text   string
	Subtle bool
}

// Metric is one labelled figure with an optional delta line.
type Metric struct {
	Label string
	Value string
	Delta string
	Warn  bool
}

// Metrics is a row of metrics.
type Metrics struct {
	Items []Metric
}

// BannerItem is one highlighted figure in a Banner.
type BannerItem struct {
	Value string
	Label string
	Color string
}

// Banner is a highlighted row of headline figures.
type Banner struct {
	Items []BannerItem
}

// Tabs holds the tab titles and the blocks of the active tab only.
type Tabs struct {
	Labels  []string
	Active  int
	Content []Block
}

// Table is a titled grid. Empty is shown in place of rows when there are
// none.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
	Empty   string
}

// Series is one named set of values across a chart's categories.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// BarChart draws one bar per category; Stacked bars sum their series.
// CategoryColors, when set, colours each category's bar instead of the
// series colour.
type BarChart struct {
	Title          string
	Unit           string
	Categories     []string
	CategoryColors []string
	Series         []Series
	Stacked        bool
}

// Slice is one part of a ShareChart.
type Slice struct {
	Label string
	Value float64
	Color string
}

// ShareChart draws slices as shares of their sum.
type ShareChart struct {
	Title  string
	Slices []Slice
}

// Progress is a labelled progress bar from 0 to 100.
type Progress struct {
	Label   string
	Percent int
	Caption string
}

// NoticeLevel sets the tone of a Notice.
type NoticeLevel int

// Notice levels.
const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeWarning
	NoticeCritical
)

// Notice is a highlighted message.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// Code is preformatted text.
type Code struct {
	Text string
}

// Diagram is an already drawn diagram.
type Diagram struct {
	Text string
}

// Badges are success markers shown side by side.
type Badges struct {
	Labels []string
}

// FilterInput is the free-text search box; Value is the current filter.
type FilterInput struct {
	Prompt      string
	Placeholder string
	Value       string
}

// Button is an action bound to Key that produces FileName.
type Button struct {
	Label    string
	Key      string
	FileName string
}

func (Heading) block()     {}
func (Paragraph) block()   {}
func (Metrics) block()     {}
func (Banner) block()      {}
func (Tabs) block()        {}
func (Table) block()       {}
func (BarChart) block()    {}
func (ShareChart) block()  {}
func (Progress) block()    {}
func (Notice) block()      {}
func (Code) block()        {}
func (Diagram) block()     {}
func (Badges) block()      {}
func (FilterInput) block() {}
func (Button) block()      {}
