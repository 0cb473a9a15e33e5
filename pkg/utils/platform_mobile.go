//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true，此时只能通过触摸屏幕左右两半移动
func IsMobile() bool {
	return true
}
