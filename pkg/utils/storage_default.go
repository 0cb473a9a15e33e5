//go:build !android

package utils

// EnsureStorageDir 确保存档目录存在（非 Android 平台的空实现）
// gdata 在桌面平台上会在用户数据目录下自动创建存档目录
func EnsureStorageDir() error {
	return nil
}

// StoragePath 存档根目录（非 Android 平台由 gdata 决定，返回空字符串）
func StoragePath() string {
	return ""
}
