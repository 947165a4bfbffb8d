package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type healthStatus struct {
	OK    bool   `json:"ok"`
	DB    string `json:"db"`
	Redis string `json:"redis"`
}

// Health pings Postgres and Redis with a short deadline. Reports status
// only, never connection details.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		st := healthStatus{OK: true, DB: "connected", Redis: "connected"}

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			st.DB = "error"
			st.OK = false
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			st.Redis = "error"
			st.OK = false
		}

		code := http.StatusOK
		if !st.OK {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, st)
	}
}
