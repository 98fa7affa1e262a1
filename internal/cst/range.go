package cst

import "strconv"

// Range identifies a contiguous region of a source file by file index and
// byte offsets. The file index refers to the driver's file table; this
// package never opens files itself.
type Range struct {
	File  int
	Begin int
	End   int
}

func NewRange(file, begin, end int) Range {
	return Range{File: file, Begin: begin, End: end}
}

func (r Range) String() string {
	return strconv.Itoa(r.File) + ":" + strconv.Itoa(r.Begin) + "-" + strconv.Itoa(r.End)
}

// ConcatRanges merges two ranges of the same file into one covering both.
func ConcatRanges(a, b Range) Range {
	begin := a.Begin
	if b.Begin < begin {
		begin = b.Begin
	}
	end := a.End
	if b.End > end {
		end = b.End
	}
	return Range{File: a.File, Begin: begin, End: end}
}
