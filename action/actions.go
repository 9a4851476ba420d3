package action

// specialActions maps mouse/special/multimedia action names to their
// literal 4-byte codes. Mouse and special codes come from the
// rd_mouse_wireless keycode table; the "fire" bytes and all 0x92
// multimedia codes were corrected/added from M913 USB captures.
var specialActions = map[string]Code{
	"left":           {0x01, 0x01, 0x00, 0x53},
	"right":          {0x01, 0x02, 0x00, 0x52},
	"middle":         {0x01, 0x04, 0x00, 0x50},
	"backward":       {0x01, 0x08, 0x00, 0x4c},
	"forward":        {0x01, 0x10, 0x00, 0x44},
	"dpi-":           {0x02, 0x03, 0x00, 0x50},
	"dpi+":           {0x02, 0x02, 0x00, 0x51},
	"dpi-cycle":      {0x02, 0x01, 0x00, 0x52},
	"dpi-loop":       {0x02, 0x01, 0x00, 0x52}, // alias
	"led_toggle":     {0x08, 0x00, 0x00, 0x4d},
	"rgb_toggle":     {0x08, 0x00, 0x00, 0x4d}, // alias
	"none":           {0x00, 0x00, 0x00, 0x55},
	"disable":        {0x00, 0x00, 0x00, 0x55}, // alias
	"fire":           {0x04, 0x3a, 0x03, 0x14}, // hardware rapid-fire, default speed/times
	"three_click":    {0x04, 0x32, 0x03, 0x1c},
	"polling_switch": {0x07, 0x00, 0x00, 0x4e},

	// Multimedia / consumer-control keys. Kind 0x92 routes these through
	// the keyboard-event sub-packet mechanism.
	"media_play":     {0x92, 0x00, 0xcd, 0x00},
	"media_player":   {0x92, 0x01, 0x83, 0x01},
	"media_next":     {0x92, 0x00, 0xb5, 0x00},
	"media_prev":     {0x92, 0x00, 0xb6, 0x00},
	"media_stop":     {0x92, 0x00, 0xb7, 0x00},
	"media_vol_up":   {0x92, 0x00, 0xe9, 0x00},
	"media_vol_down": {0x92, 0x00, 0xea, 0x00},
	"media_mute":     {0x92, 0x00, 0xe2, 0x00},
	"media_email":    {0x92, 0x01, 0x8a, 0x01},
	"media_calc":     {0x92, 0x01, 0x92, 0x01},
	"media_computer": {0x92, 0x01, 0x94, 0x01},
	"media_home":     {0x92, 0x02, 0x23, 0x02},
	"media_search":   {0x92, 0x02, 0x21, 0x02},
	"www_forward":    {0x92, 0x02, 0x25, 0x02},
	"www_back":       {0x92, 0x02, 0x24, 0x02},
	"www_stop":       {0x92, 0x02, 0x26, 0x02},
	"www_refresh":    {0x92, 0x02, 0x27, 0x02},
	"www_favorites":  {0x92, 0x02, 0x2a, 0x02},
	"favorites":      {0x92, 0x02, 0x2a, 0x02}, // alias
}

// SpecialActionNames returns the sorted vocabulary of direct-lookup action
// names, for help output.
func SpecialActionNames() []string {
	return sortedKeys(specialActions)
}
