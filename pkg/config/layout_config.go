package config

// 布局配置常量
// 本文件定义了窗口尺寸和参数面板的布局参数（屏幕坐标，左上角为原点）

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 1024

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 768
)

// Parameter Panel Configuration (参数面板配置)
const (
	// PanelX, PanelY 面板左上角位置
	PanelX = 10.0
	PanelY = 10.0

	// PanelPadding 面板内边距
	PanelPadding = 10.0

	// PanelLabelWidth 标签列宽度（basicfont 7x13，最长标签 "Attract Strength: " 18 个字符）
	PanelLabelWidth = 130.0

	// PanelRowHeight 每一行（一个滑动条）的高度
	PanelRowHeight = 24.0

	// SliderSlotWidth 滑槽宽度
	SliderSlotWidth = 160.0

	// SliderSlotHeight 滑槽高度（可点击区域）
	SliderSlotHeight = 14.0

	// SliderKnobWidth 滑块宽度
	SliderKnobWidth = 8.0

	// PanelValueWidth 数值显示列宽度
	PanelValueWidth = 48.0
)

// PanelBounds 返回参数面板的屏幕矩形
// 参数：rows 面板中的滑动条数量
func PanelBounds(rows int) (x, y, width, height float64) {
	width = PanelPadding*2 + PanelLabelWidth + SliderSlotWidth + PanelValueWidth
	height = PanelPadding*2 + float64(rows)*PanelRowHeight
	return PanelX, PanelY, width, height
}

// SliderSlotPosition 返回第 row 个滑动条滑槽的左上角位置
func SliderSlotPosition(row int) (x, y float64) {
	x = PanelX + PanelPadding + PanelLabelWidth
	y = PanelY + PanelPadding + float64(row)*PanelRowHeight + (PanelRowHeight-SliderSlotHeight)/2
	return x, y
}
