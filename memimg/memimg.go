// 内存中的图片缓存，渲染时复用不变的图层
package memimg

import (
	"image"
	"sync"
)

var (
	images      = make(map[string]image.Image)
	imagesMutex sync.RWMutex
)

// Store 保存一张图片
func Store(name string, img image.Image) {
	imagesMutex.Lock()
	images[name] = img
	imagesMutex.Unlock()
}

// Get 从内存中读取图片
func Get(name string) (image.Image, bool) {
	imagesMutex.RLock()
	img, exists := images[name]
	imagesMutex.RUnlock()
	return img, exists
}

// GetOrBuild 缓存未命中时调用build生成并保存
func GetOrBuild(name string, build func() image.Image) image.Image {
	if img, ok := Get(name); ok {
		return img
	}
	img := build()
	imagesMutex.Lock()
	defer imagesMutex.Unlock()
	// 并发构建时以先保存的为准
	if existing, ok := images[name]; ok {
		return existing
	}
	images[name] = img
	return img
}

// Reset 清空缓存，配置热更新改变尺寸时调用
func Reset() {
	imagesMutex.Lock()
	clear(images)
	imagesMutex.Unlock()
}
