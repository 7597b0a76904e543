package services

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	config "github.com/careerbridge/backend/configs"
)

// Remote folder provisioning for course media. Folder creation is a
// best-effort side effect: creates are queued and a single worker drains the
// queue so a slow storage API never adds latency to the course write path.

var folderQueue = make(chan string, 128)

// ProvisionFolder enqueues a storage folder create. Drops the request when
// the queue is full rather than blocking the caller.
func ProvisionFolder(path string) {
	select {
	case folderQueue <- path:
	default:
		log.Printf("⚠️ Storage queue full, dropping folder create for %s", path)
	}
}

// RunStorageWorker drains the folder queue. Started once from main.
func RunStorageWorker() {
	for path := range folderQueue {
		if err := createFolder(path); err != nil {
			log.Printf("⚠️ Failed to create storage folder %s: %v", path, err)
		}
	}
}

func createFolder(path string) error {
	zone := config.Config("BUNNY_STORAGE_ZONE")
	accessKey := config.Config("BUNNY_ACCESS_KEY")
	if zone == "" || accessKey == "" {
		// Not configured in this environment; skip silently.
		return nil
	}

	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	endpoint := fmt.Sprintf("https://storage.bunnycdn.com/%s/%s", url.PathEscape(zone), path)

	req, err := http.NewRequest(http.MethodPut, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("AccessKey", accessKey)
	req.ContentLength = 0

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("storage API returned status %d", resp.StatusCode)
	}
	return nil
}

// LessonStoragePath is the placeholder path where a lesson's video should
// reside once uploaded.
func LessonStoragePath(courseID, sectionID, lessonID string) string {
	return fmt.Sprintf("courses/%s/%s/%s.mp4", courseID, sectionID, lessonID)
}

// SectionStoragePath is the storage folder for a course section.
func SectionStoragePath(courseID, sectionID string) string {
	return fmt.Sprintf("courses/%s/%s", courseID, sectionID)
}
