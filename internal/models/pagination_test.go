package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// PaginationTestSuite defines the test suite for the pagination envelope
type PaginationTestSuite struct {
	suite.Suite
}

func TestPaginationTestSuite(t *testing.T) {
	suite.Run(t, new(PaginationTestSuite))
}

func (s *PaginationTestSuite) TestNewPagination_ExactDivision() {
	p := NewPagination(1, 10, 100)

	s.Equal(1, p.Page)
	s.Equal(10, p.Limit)
	s.Equal(int64(100), p.Total)
	s.Equal(10, p.TotalPages)
	s.True(p.HasNext)
	s.False(p.HasPrev)
}

func (s *PaginationTestSuite) TestNewPagination_CeilingDivision() {
	// 3 rows at 2 per page is 2 pages, not 1.
	p := NewPagination(1, 2, 3)

	s.Equal(2, p.TotalPages)
	s.True(p.HasNext)
	s.False(p.HasPrev)
}

func (s *PaginationTestSuite) TestNewPagination_LastPage() {
	p := NewPagination(2, 2, 3)

	s.Equal(2, p.TotalPages)
	s.False(p.HasNext)
	s.True(p.HasPrev)
}

func (s *PaginationTestSuite) TestNewPagination_MiddlePage() {
	p := NewPagination(3, 10, 95)

	s.Equal(10, p.TotalPages)
	s.True(p.HasNext)
	s.True(p.HasPrev)
}

func (s *PaginationTestSuite) TestNewPagination_EmptyDataset() {
	p := NewPagination(1, 10, 0)

	s.Equal(0, p.TotalPages)
	s.False(p.HasNext)
	s.False(p.HasPrev)
}

func (s *PaginationTestSuite) TestNewPagination_PageBeyondEnd() {
	// Requesting past the last page stays well-formed; the row slice is
	// simply empty.
	p := NewPagination(50, 10, 95)

	s.Equal(10, p.TotalPages)
	s.False(p.HasNext)
	s.True(p.HasPrev)
}

func (s *PaginationTestSuite) TestNewPagination_SingleRow() {
	p := NewPagination(1, 10, 1)

	s.Equal(1, p.TotalPages)
	s.False(p.HasNext)
	s.False(p.HasPrev)
}

func (s *PaginationTestSuite) TestOffset() {
	s.Equal(0, Offset(1, 10))
	s.Equal(10, Offset(2, 10))
	s.Equal(40, Offset(3, 20))
}
