package model

import (
	"gorm.io/gorm"
)

const (
	ResultsPerPage    = 25
	MaxPagesNavigator = 5
	maxPageSize       = 200
)

// Paginate limits a query to the rows of currentPage, pages being numbered from 1
func Paginate(currentPage int, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if currentPage < 1 {
			currentPage = 1
		}

		switch {
		case pageSize > maxPageSize:
			pageSize = maxPageSize
		case pageSize <= 0:
			pageSize = ResultsPerPage
		}

		offset := (currentPage - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}
