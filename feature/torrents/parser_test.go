package torrents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listing = `    ID   Done       Have  ETA           Up    Down  Ratio  Status       Name
     1   100%    1.38 GB  Done         0.0     0.0    2.5  Idle         ubuntu-24.04.iso
     2    45%   512.0 MB  5 min       12.0  1500.0    0.1  Up & Down    Big Buck Bunny 1080p
     3     0%       None  Unknown      0.0     0.0   None  Stopped      broken.torrent
Sum:            1.88 GB               12.0  1500.0
`

func TestParse_Example(t *testing.T) {
	p := NewParser(DefaultParserOptions())

	got := p.Parse("  3   87%   4.1 GB   Idle   0.0   0.2   1.8   Seeding   Show.S01E02.mkv")
	require.Len(t, got, 1)
	assert.Equal(t, Record{
		ID:     3,
		Done:   "87",
		Have:   "4.1 GB",
		ETA:    "Idle",
		Up:     0.0,
		Down:   0.2,
		Ratio:  1.8,
		Status: "Seeding",
		Name:   "Show.S01E02.mkv",
	}, got[0])
}

func TestParse_Listing(t *testing.T) {
	p := NewParser(DefaultParserOptions())

	got := p.Parse(listing)
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "100", got[0].Done)
	assert.Equal(t, "Done", got[0].ETA)
	assert.Equal(t, "ubuntu-24.04.iso", got[0].Name)

	assert.Equal(t, 2, got[1].ID)
	assert.Equal(t, "512.0 MB", got[1].Have)
	assert.Equal(t, "5 min", got[1].ETA)
	assert.Equal(t, 1500.0, got[1].Down)
	assert.Equal(t, "Up & Down", got[1].Status)
	assert.Equal(t, "Big Buck Bunny 1080p", got[1].Name)
}

func TestParse_Noise(t *testing.T) {
	p := NewParser(DefaultParserOptions())

	assert.Empty(t, p.Parse(""))
	assert.NotNil(t, p.Parse(""))
	assert.Empty(t, p.Parse("\n   \n\t\n"))
	assert.Empty(t, p.Parse("ID   Done   Have   ETA   Up   Down   Ratio   Status   Name"))
	assert.Empty(t, p.Parse("Sum:   1   2%   3.0 GB   Idle   0.0   0.0   0.0   Idle   x"))
	assert.Empty(t, p.Parse("  1   50%   1.0 GB   Idle   0.0   1.2.3   0.0   Idle   bad.rate"))
	assert.Empty(t, p.Parse("  1   50   1.0 GB   Idle   0.0   0.0   0.0   Idle   no.percent"))
}

func TestParse_CRLF(t *testing.T) {
	p := NewParser(DefaultParserOptions())

	raw := "ID   Done\r\n  7   10%   2.0 MB   1 hrs   0.5   3.0   0.0   Downloading   a.iso\r\nSum:   2.0 MB\r\n"
	got := p.Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].ID)
	assert.Equal(t, "1 hrs", got[0].ETA)
	assert.Equal(t, "a.iso", got[0].Name)
}

func TestParse_Deterministic(t *testing.T) {
	p := NewParser(DefaultParserOptions())
	assert.Equal(t, p.Parse(listing), p.Parse(listing))
}

func TestParse_HeaderLines(t *testing.T) {
	raw := "  1   10%   1.0 MB   Idle   0.0   0.0   0.0   Idle   first\n" +
		"  2   20%   2.0 MB   Idle   0.0   0.0   0.0   Idle   second\n"

	assert.Len(t, NewParser(ParserOptions{HeaderLines: 0, MinColumnGap: 2}).Parse(raw), 2)

	got := NewParser(ParserOptions{HeaderLines: 1, MinColumnGap: 2}).Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Name)

	// Blank lines do not count towards the header.
	got = NewParser(ParserOptions{HeaderLines: 1, MinColumnGap: 2}).Parse("\n\n" + raw)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestParse_MinColumnGap(t *testing.T) {
	raw := "1 10% 1.0 MB Idle 0.0 0.0 0.0 Seeding single.spaced.name"

	assert.Empty(t, NewParser(ParserOptions{MinColumnGap: 2}).Parse(raw))

	got := NewParser(ParserOptions{MinColumnGap: 1}).Parse(raw)
	require.Len(t, got, 1)
	assert.Equal(t, "1.0 MB", got[0].Have)
	assert.Equal(t, "Idle", got[0].ETA)
	assert.Equal(t, "Seeding", got[0].Status)
	assert.Equal(t, "single.spaced.name", got[0].Name)
}

func TestNewParser_ClampsOptions(t *testing.T) {
	p := NewParser(ParserOptions{HeaderLines: -3, MinColumnGap: 0})
	assert.Equal(t, ParserOptions{HeaderLines: 0, MinColumnGap: 1}, p.Options())
}

func TestParse_ErrorMarker(t *testing.T) {
	p := NewParser(DefaultParserOptions())

	got := p.Parse("    2*   45%   512.0 MB  Unknown      0.0     0.0    0.1  Stopped      tracker.error.iso")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, "45", got[0].Done)
	assert.Equal(t, "Stopped", got[0].Status)
	assert.Equal(t, "tracker.error.iso", got[0].Name)

	assert.Empty(t, p.Parse("    2**   45%   512.0 MB  Unknown      0.0     0.0    0.1  Stopped      x"))
}
