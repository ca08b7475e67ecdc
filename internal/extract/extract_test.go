package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/on-the-issues/internal/db"
	"github.com/ziadkadry99/on-the-issues/internal/topic"
	"github.com/ziadkadry99/on-the-issues/internal/walker"
)

const leaveArticle = `<!DOCTYPE html>
<html>
<head><title>Statehouse Roundup</title><script>var paidLeave = "paid leave";</script></head>
<body>
  <nav><a href="/">Paid leave news</a></nav>
  <article>
    <h1>Roundup</h1>
    <p>The committee debated paid leave for hours. Members also discussed roads.</p>
    <p>A separate bill extends paid leave for military families only.</p>
    <ul><li><p>Sick leave would be expanded under the proposal.</p></li></ul>
    <blockquote>Paid leave is long overdue, said Sen. Smith.</blockquote>
  </article>
  <footer>Paid leave footer text that should never appear.</footer>
</body>
</html>`

func writeArticles(t *testing.T, files map[string]string) []walker.FileInfo {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	out, err := walker.Walk(walker.WalkerConfig{RootDir: dir})
	require.NoError(t, err)
	return out
}

func leaveDataset() *topic.Dataset {
	return &topic.Dataset{Topics: []topic.Record{
		{
			Name: "Paid Leave",
			Source: topic.Opinions{
				Keywords:         []string{"paid leave", "sick leave"},
				ExcludedKeywords: []string{"military"},
				Responses:        []string{"Existing quote."},
			},
		},
		{Name: "Minimum Wage"},
	}}
}

func TestParseHTML(t *testing.T) {
	a, err := ParseHTML(strings.NewReader(leaveArticle))
	require.NoError(t, err)

	assert.Equal(t, "Statehouse Roundup", a.Title)
	assert.Equal(t, []string{
		"The committee debated paid leave for hours. Members also discussed roads.",
		"A separate bill extends paid leave for military families only.",
		"Sick leave would be expanded under the proposal.",
		"Paid leave is long overdue, said Sen. Smith.",
	}, a.Paragraphs)
}

func TestParseHTMLWithoutBlocks(t *testing.T) {
	a, err := ParseHTML(strings.NewReader("<html><body>First line here\n\nSecond line</body></html>"))
	require.NoError(t, err)
	assert.Equal(t, []string{"First line here", "Second line"}, a.Paragraphs)
}

func TestParseText(t *testing.T) {
	a := ParseText("One line\ncontinues here.\n\n\nSecond paragraph.\n")
	assert.Equal(t, []string{"One line continues here.", "Second paragraph."}, a.Paragraphs)
}

func TestParseMarkdown(t *testing.T) {
	a, err := ParseMarkdown([]byte("# Title\n\nFirst *paragraph* here.\n\n- an item\n"))
	require.NoError(t, err)
	assert.Equal(t, "Title", a.Title)
	assert.Equal(t, []string{"First paragraph here.", "an item"}, a.Paragraphs)
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Just one", []string{"Just one"}},
		{"First one. Second one! Third?", []string{"First one.", "Second one!", "Third?"}},
		{"Said Dr. Jones today. Then left.", []string{"Said Dr. Jones today.", "Then left."}},
		{"It costs $5.00 now. Really.", []string{"It costs $5.00 now.", "Really."}},
		{"Made in the U.S. economy grows. Yes.", []string{"Made in the U.S. economy grows.", "Yes."}},
		{`He said "stop." Then went.`, []string{`He said "stop."`, "Then went."}},
		{"John F. Kennedy spoke. Crowds cheered.", []string{"John F. Kennedy spoke.", "Crowds cheered."}},
		{"lowercase after. continues", []string{"lowercase after. continues"}},
		{"Wait... What happened?", []string{"Wait...", "What happened?"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitSentences(tt.in), "input %q", tt.in)
	}
}

func TestExtractorRun(t *testing.T) {
	files := writeArticles(t, map[string]string{
		"a/roundup.html": leaveArticle,
		"b/notes.txt":    "Paid leave came up again.\n\nThe committee debated paid leave for hours.\n",
	})
	ds := leaveDataset()

	res, err := New(Options{Side: topic.SideSource, MinLength: 10}, nil, nil).Run(context.Background(), files, ds)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Files)
	assert.Equal(t, 0, res.Failed)
	require.Len(t, res.Topics, 2)

	leave := res.Topics[0]
	assert.Equal(t, "paid_leave", leave.ID)
	assert.Equal(t, 1, leave.Excluded)
	var texts []string
	for _, q := range leave.Quotes {
		texts = append(texts, q.Text)
	}
	// File order, then sentence order; the repeated sentence is kept once.
	assert.Equal(t, []string{
		"The committee debated paid leave for hours.",
		"Sick leave would be expanded under the proposal.",
		"Paid leave is long overdue, said Sen. Smith.",
		"Paid leave came up again.",
	}, texts)
	assert.Equal(t, "a/roundup.html", leave.Quotes[0].Source)
	assert.Equal(t, "b/notes.txt", leave.Quotes[3].Source)

	assert.True(t, res.Topics[1].Skipped)
	assert.Empty(t, res.Topics[1].Quotes)
	assert.Equal(t, 4, res.Total())
}

func TestExtractorLimits(t *testing.T) {
	files := writeArticles(t, map[string]string{"roundup.html": leaveArticle})

	res, err := New(Options{MaxQuotes: 2}, nil, nil).Run(context.Background(), files, leaveDataset())
	require.NoError(t, err)
	assert.Len(t, res.Topics[0].Quotes, 2)

	res, err = New(Options{MinLength: 45}, nil, nil).Run(context.Background(), files, leaveDataset())
	require.NoError(t, err)
	for _, q := range res.Topics[0].Quotes {
		assert.GreaterOrEqual(t, len([]rune(q.Text)), 45)
	}
}

func TestExtractorCancelled(t *testing.T) {
	files := writeArticles(t, map[string]string{"roundup.html": leaveArticle})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}, nil, nil).Run(ctx, files, leaveDataset())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApply(t *testing.T) {
	res := &Result{Topics: []TopicResult{
		{ID: "paid_leave", Quotes: []Quote{{Text: "existing QUOTE."}, {Text: "New quote."}}},
		{ID: "minimum_wage", Skipped: true},
	}}

	merged := leaveDataset()
	assert.Equal(t, 1, Apply(merged, res, topic.SideSource, true))
	assert.Equal(t, []string{"Existing quote.", "New quote."}, merged.Topics[0].Source.Responses)
	assert.Empty(t, merged.Topics[1].Source.Responses)

	replaced := leaveDataset()
	assert.Equal(t, 2, Apply(replaced, res, topic.SideSource, false))
	assert.Equal(t, []string{"existing QUOTE.", "New quote."}, replaced.Topics[0].Source.Responses)

	friends := leaveDataset()
	Apply(friends, res, topic.SideFriends, false)
	assert.Equal(t, []string{"existing QUOTE.", "New quote."}, friends.Topics[0].Friends.Responses)
	assert.Equal(t, []string{"Existing quote."}, friends.Topics[0].Source.Responses)
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	d, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return NewCache(d)
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, "h1", &Article{Path: "a.html", Title: "T", Paragraphs: []string{"One.", "Two."}}))
	require.NoError(t, c.Put(ctx, "h1", &Article{Title: "T2", Paragraphs: []string{"Three."}}))
	require.NoError(t, c.Put(ctx, "h2", &Article{}))

	a, ok, err := c.Get(ctx, "h1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "T2", a.Title)
	assert.Equal(t, []string{"Three."}, a.Paragraphs)
	assert.Empty(t, a.Path)

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, c.Clear(ctx))
	n, err = c.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExtractorUsesCache(t *testing.T) {
	files := writeArticles(t, map[string]string{"roundup.html": leaveArticle})
	c := newTestCache(t)

	first, err := New(Options{}, nil, nil).WithCache(c).Run(context.Background(), files, leaveDataset())
	require.NoError(t, err)
	assert.Zero(t, first.Cached)

	// The cached copy is used even after the file is gone.
	require.NoError(t, os.Remove(files[0].Path))
	second, err := New(Options{}, nil, nil).WithCache(c).Run(context.Background(), files, leaveDataset())
	require.NoError(t, err)
	assert.Equal(t, 1, second.Cached)
	assert.Equal(t, 0, second.Failed)
	assert.Equal(t, first.Topics, second.Topics)
}
