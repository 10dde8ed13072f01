package command

import "path/filepath"

// Defaults returns the built-in command set rooted at the given home
// directory. Callers pass the result to a registry explicitly, so the
// defaults are replaceable configuration rather than baked-in state.
//
// Triggers keep both Korean and English phrasings - the assistant grew up
// as a Korean voice-command front-end and both sets are still in use.
func Defaults(home string) []Command {
	downloads := filepath.Join(home, "Downloads")
	documents := filepath.Join(home, "Documents")
	desktop := filepath.Join(home, "Desktop")

	return []Command{
		{
			Name:        "open_control_panel",
			Description: "Opens the system control panel.",
			Triggers:    []string{"제어판 열어줘", "제어판 켜줘", "control panel"},
			Action:      LaunchProgram{Target: "control", Message: "Opened the control panel."},
		},
		{
			Name:        "open_chrome",
			Description: "Launches the Google Chrome browser.",
			Triggers:    []string{"크롬 켜줘", "크롬 열어줘", "chrome"},
			Action:      LaunchProgram{Target: "chrome", Message: "Launched Chrome."},
		},
		{
			Name:        "open_downloads",
			Description: "Opens the Downloads folder.",
			Triggers:    []string{"다운로드 폴더 열어줘", "다운로드 열어줘", "downloads"},
			Action:      OpenFolder{Path: downloads, Message: "Opened the Downloads folder."},
		},
		{
			Name:        "open_documents",
			Description: "Opens the Documents folder.",
			Triggers:    []string{"문서 폴더 열어줘", "문서 열어줘", "documents"},
			Action:      OpenFolder{Path: documents, Message: "Opened the Documents folder."},
		},
		{
			Name:        "open_desktop",
			Description: "Opens the Desktop folder.",
			Triggers:    []string{"바탕화면 열어줘", "바탕화면 폴더", "desktop"},
			Action:      OpenFolder{Path: desktop, Message: "Opened the Desktop folder."},
		},
		{
			Name:        "open_settings",
			Description: "Opens the system settings app.",
			Triggers:    []string{"설정 열어줘", "설정 켜줘", "settings"},
			Action:      LaunchProgram{Target: "ms-settings:", Message: "Opened system settings."},
		},
		{
			Name:        "open_network_settings",
			Description: "Opens the network settings screen.",
			Triggers:    []string{"네트워크 설정", "와이파이 설정", "network settings", "wifi settings"},
			Action:      LaunchProgram{Target: "ms-settings:network-status", Message: "Opened network settings."},
		},
		{
			Name:        "open_naver",
			Description: "Opens the Naver homepage.",
			Triggers:    []string{"네이버 열어줘", "네이버 켜줘", "naver 열어줘"},
			Action:      OpenURL{URL: "https://www.naver.com", Message: "Opened Naver."},
		},
		{
			Name:        "open_youtube",
			Description: "Opens YouTube.",
			Triggers:    []string{"유튜브 열어줘", "유튜브 켜줘", "youtube"},
			Action:      OpenURL{URL: "https://www.youtube.com", Message: "Opened YouTube."},
		},
	}
}
