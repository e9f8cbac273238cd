package main

import (
	"fmt"

	"github.com/inkwell-cms/inkwell/internal/config"
	"github.com/inkwell-cms/inkwell/internal/logger"
	"github.com/inkwell-cms/inkwell/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{
			Name:        "技术",
			ImageURL:    "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800",
			Description: "编程语言与开发实践",
		},
		{
			Name:        "随笔",
			ImageURL:    "https://images.unsplash.com/photo-1455390582262-044cdead277a?w=800",
			Description: "日常记录与思考",
		},
		{
			Name:        "产品",
			ImageURL:    "https://images.unsplash.com/photo-1512314889357-e157c22f938d?w=800",
			Description: "产品设计与运营",
		},
	}

	categoryIDs := map[string]string{}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
				continue
			}
			stdLog.Printf("Created category: %s", cat.Name)
			categoryIDs[cat.Name] = cat.ID
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
			categoryIDs[cat.Name] = existing.ID
		}
	}

	// 添加文章
	posts := []struct {
		post       models.Post
		categories []string
	}{
		{
			post: models.Post{
				Title:         "欢迎来到 Inkwell",
				Content:       "<h1>你好</h1><p>这是第一篇文章。Inkwell 是一个轻量的博客内容管理服务，支持草稿与发布两种状态。</p>",
				CoverImageURL: "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=800",
				Published:     true,
			},
			categories: []string{"随笔"},
		},
		{
			post: models.Post{
				Title:         "用 Go 搭建博客后端",
				Content:       "<h2>为什么选 Go</h2><p>部署简单，并发模型清晰。</p><p>本文介绍服务分层与数据建模。</p>",
				CoverImageURL: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=800",
				Published:     true,
			},
			categories: []string{"技术"},
		},
		{
			post: models.Post{
				Title:         "草稿：下季度内容规划",
				Content:       "<p>还在整理中，先列个提纲。</p>",
				CoverImageURL: "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?w=800",
				Published:     false,
			},
			categories: []string{"随笔", "产品"},
		},
	}

	for _, item := range posts {
		var existing models.Post
		if err := models.DB.Where("title = ?", item.post.Title).First(&existing).Error; err == nil {
			stdLog.Printf("Post already exists: %s", item.post.Title)
			continue
		}

		post := item.post
		for _, name := range item.categories {
			id, ok := categoryIDs[name]
			if !ok {
				continue
			}
			post.Categories = append(post.Categories, models.Category{ID: id})
		}
		if err := models.DB.Create(&post).Error; err != nil {
			stdLog.Printf("Failed to create post %s: %v", post.Title, err)
		} else {
			stdLog.Printf("Created post: %s", post.Title)
		}
	}

	fmt.Println("\nSeed data created:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 3 Posts (2 published + 1 draft)")
}
