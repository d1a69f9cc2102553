package grammar

var pchar = alt("pchar", unreserved, pctEncoded, subDelims, lit("pchar", ":"), lit("pchar", "@"))

var (
	segment     = rep(0, -1, pchar)
	segmentNZ   = rep(1, -1, pchar)
	segmentNZNC = rep(1, -1, alt("segment-nz-nc", unreserved, pctEncoded, subDelims, lit("segment-nz-nc", "@")))

	slashSegments = rep(0, -1, seq(lit("path", "/"), segment))
)

var (
	pathAbempty  = slashSegments
	pathAbsolute = seq(lit("path-absolute", "/"), opt(seq(segmentNZ, slashSegments)))
	pathNoscheme = seq(segmentNZNC, slashSegments)
	pathRootless = seq(segmentNZ, slashSegments)
	pathEmpty    = matcher(empty)
)

// Absolute comes before abempty, so "//" matches "/" only.
var path = alt("path", pathAbsolute, pathNoscheme, pathRootless, pathAbempty, pathEmpty)

// PChar matches
//
//	pchar         = unreserved / pct-encoded / sub-delims / ":" / "@"
func PChar(c Cursor) (Cursor, Token, error) { return runChar(KindPChar, c, pchar) }

// Segment matches
//
//	segment       = *pchar
func Segment(c Cursor) (Cursor, Token, error) { return run(KindSegment, c, segment) }

// SegmentNZ matches
//
//	segment-nz    = 1*pchar
func SegmentNZ(c Cursor) (Cursor, Token, error) { return run(KindSegmentNZ, c, segmentNZ) }

// SegmentNZNC matches
//
//	segment-nz-nc = 1*( unreserved / pct-encoded / sub-delims / "@" )
//	              ; non-zero-length segment without any colon ":"
func SegmentNZNC(c Cursor) (Cursor, Token, error) { return run(KindSegmentNZNC, c, segmentNZNC) }

// PathAbempty matches
//
//	path-abempty  = *( "/" segment )
func PathAbempty(c Cursor) (Cursor, Token, error) { return run(KindPathAbempty, c, pathAbempty) }

// PathAbsolute matches
//
//	path-absolute = "/" [ segment-nz *( "/" segment ) ]
func PathAbsolute(c Cursor) (Cursor, Token, error) { return run(KindPathAbsolute, c, pathAbsolute) }

// PathNoscheme matches
//
//	path-noscheme = segment-nz-nc *( "/" segment )
func PathNoscheme(c Cursor) (Cursor, Token, error) { return run(KindPathNoscheme, c, pathNoscheme) }

// PathRootless matches
//
//	path-rootless = segment-nz *( "/" segment )
func PathRootless(c Cursor) (Cursor, Token, error) { return run(KindPathRootless, c, pathRootless) }

// PathEmpty matches zero characters and never fails.
func PathEmpty(c Cursor) (Cursor, Token, error) { return run(KindPathEmpty, c, pathEmpty) }

// Path matches
//
//	path          = path-absolute / path-noscheme / path-rootless / path-abempty / path-empty
//
// Note the order: path-absolute is tried before path-abempty, so the input "//"
// matches "/" and leaves the second slash unconsumed.
func Path(c Cursor) (Cursor, Token, error) { return run(KindPath, c, path) }
