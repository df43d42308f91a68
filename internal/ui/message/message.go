package message

import "github.com/GustavoCaso/apero/internal/tabs"

// ShowBannerMsg is sent by components to display a banner notification.
type ShowBannerMsg struct {
	Message string
	IsError bool
}

// TabClickedMsg is sent when a trigger is clicked or selected from the keyboard.
type TabClickedMsg struct {
	Tab tabs.Tab
}
