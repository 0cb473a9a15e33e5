package embedded

import (
	"testing"
	"testing/fstest"
)

// 测试用的内存文件系统，结构与项目根目录 embed.go 嵌入的一致
var testFS = fstest.MapFS{
	"data/config/game.yaml": &fstest.MapFile{Data: []byte("waves:\n  maxWavesPerLevel: 3\n")},
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	// 重置状态
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时读取
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	if _, err := ReadFile("data/config/game.yaml"); err == nil {
		t.Error("Expected error when reading before Init()")
	}
}

// TestReadFile 测试读取与路径标准化
func TestReadFile(t *testing.T) {
	Init(testFS)
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/config/game.yaml"},
		{name: "带 ./ 前缀", path: "./data/config/game.yaml"},
		{name: "未知前缀", path: "assets/config/game.yaml", wantErr: true},
		{name: "文件不存在", path: "data/config/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}
}

// TestExists 测试文件存在检查
func TestExists(t *testing.T) {
	Init(testFS)
	defer func() { initialized = false }()

	if !Exists("data/config/game.yaml") {
		t.Error("Expected data/config/game.yaml to exist")
	}
	if Exists("data/config/missing.yaml") {
		t.Error("Expected data/config/missing.yaml to not exist")
	}
}
