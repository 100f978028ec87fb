package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStore 储存上传的文件并解析其公开地址。
// 相同路径重复写入会覆盖，保证头像重新上传后地址保持稳定。
type FileStore interface {
	Save(path string, data io.Reader) error
	PublicURL(path string) string
}

type DiskFileStore struct {
	baseDir string // 本地储存目录
	baseURL string // 对外访问的地址前缀
}

func NewDiskFileStore(baseDir string, baseURL string) *DiskFileStore {
	return &DiskFileStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *DiskFileStore) Save(path string, data io.Reader) error {
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(path))

	// 准备目录
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	// 打开文件（覆盖写）
	f, err := os.OpenFile(fullPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	defer f.Close()

	// 写出数据
	if _, err := io.Copy(f, data); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (s *DiskFileStore) PublicURL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}
