//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// androidSavesDir gdata 在应用私有目录下使用的子目录
const androidSavesDir = "saves"

// EnsureStorageDir 确保 Android 存档目录存在并可写
// gdata 在 Android 上使用 /data/data/{package}/ 作为存储根目录，
// 但不会预先创建子目录，必须在打开存档前调用。
func EnsureStorageDir() error {
	root := StoragePath()
	if root == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	savesDir := filepath.Join(root, androidSavesDir)
	if err := os.MkdirAll(savesDir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", savesDir, err)
	}

	// 验证目录可写
	probe := filepath.Join(savesDir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", savesDir, err)
	}
	os.Remove(probe)

	return nil
}

// StoragePath 存档根目录 /data/data/{package}，无法识别包名时返回空字符串
func StoragePath() string {
	pkg, err := androidPackageName()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}

// androidPackageName 从 /proc/self/cmdline 读取应用包名
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	name := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		name = append(name, ch)
	}
	if len(name) == 0 {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}
	return string(name), nil
}
