package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig 监听配置文件，写入或重新创建时热更新，并回调onChange。
// 返回的stop用于停止监听。
func WatchConfig(filePath string, onChange func(*AppConfig)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// 监听所在目录，编辑器保存时经常是先删除再创建
	if err := watcher.Add(filepath.Dir(filePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Clean(filePath)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					if err := Reload(filePath); err != nil {
						log.Printf("config reload failed: %v", err)
						continue
					}
					log.Printf("config reloaded from %s", filePath)
					if onChange != nil {
						onChange(Current())
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Println("config watcher error:", err)
			}
		}
	}()

	return func() {
		watcher.Close()
		<-done
	}, nil
}
