package api

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hoshinonyaruko/snake-sim/render"
	"github.com/hoshinonyaruko/snake-sim/sqlite"
	"github.com/hoshinonyaruko/snake-sim/structs"
)

// Router 注册所有接口
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	s.Register(router)
	return router
}

func (s *Server) Register(router gin.IRoutes) {
	// 处理玩家改变方向
	router.GET("/update-direction", s.UpdateDirection())
	// 其他操作：立即增长、立即排泄、重新开始
	router.GET("/action", s.Action())
	// 当前帧快照
	router.GET("/state", s.State())
	// 渲染当前帧 返回PNG
	router.GET("/render-map", s.RenderMapHandler())
	// 本进程内的成绩
	router.GET("/runs", s.Runs())
	// 每帧推送
	router.GET("/ws", s.Stream())
}

func (s *Server) UpdateDirection() gin.HandlerFunc {
	return func(c *gin.Context) {
		newDirection := c.Query("direction")
		if newDirection == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: direction"})
			return
		}

		intent, ok := structs.ParseIntent(newDirection)
		if !ok || intent.Direction() == structs.None {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid direction '%s' provided", newDirection)})
			return
		}

		s.Submit(intent)
		c.JSON(http.StatusOK, gin.H{"message": "Direction queued", "direction": intent.Direction().String()})
	}
}

func (s *Server) Action() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("action")
		intent, ok := structs.ParseIntent(name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid action '%s' provided", name)})
			return
		}

		s.Submit(intent)
		c.JSON(http.StatusOK, gin.H{"message": "Action queued", "action": name})
	}
}

func (s *Server) State() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Frame())
	}
}

// RenderMapHandler 渲染当前帧，同一帧只渲染一次
func (s *Server) RenderMapHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		frame := s.Frame()

		s.frameMu.Lock()
		defer s.frameMu.Unlock()

		cacheKey := fmt.Sprintf("%s_%d_%v_%d", frame.RunID, frame.Tick, frame.Dead, s.blockSize)
		if cacheKey != s.frameKey {
			var buf bytes.Buffer
			if err := render.EncodePNG(&buf, frame, s.half, s.blockSize); err != nil {
				log.Printf("render frame failed: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to render frame"})
				return
			}
			s.frameKey = cacheKey
			s.framePNG = buf.Bytes()
		}
		c.Data(http.StatusOK, "image/png", s.framePNG)
	}
}

func (s *Server) Runs() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.db == nil {
			c.JSON(http.StatusOK, gin.H{"runs": []structs.RunRecord{}})
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		runs, err := sqlite.TopRuns(s.db, limit)
		if err != nil {
			log.Printf("load runs failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load runs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"runs": runs})
	}
}

func (s *Server) Stream() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.hub.Serve(c.Writer, c.Request, s.Frame()); err != nil {
			log.Printf("websocket closed: %v", err)
		}
	}
}
