package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

// parseIDParam reads the numeric :id route parameter.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// isDuplicateErr detects a MySQL unique-key violation (error 1062).
func isDuplicateErr(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}
