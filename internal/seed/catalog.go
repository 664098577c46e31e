package seed

import "github.com/acuestore/apiserver/types"

// Catalog is the built-in store catalog used to populate an empty backend on
// first run. Edit this list to add or change stock listings; the importer
// upserts by id, so re-running it never duplicates entries.
var Catalog = []types.SeedApp{
	{
		ID:          "youtube",
		Name:        "YouTube",
		Developer:   "Google LLC",
		Category:    "entertainment",
		Rating:      4.1,
		Description: "Enjoy your favorite videos and channels with the official YouTube app.",
		Icon:        "fab fa-youtube",
		DownloadURL: "https://apkpure.com/youtube/com.google.android.youtube/downloading",
		IsHot:       true,
		Badges:      []string{"data-sharing"},
	},
	{
		ID:          "whatsapp",
		Name:        "WhatsApp",
		Developer:   "WhatsApp LLC",
		Category:    "social",
		Rating:      4.3,
		Description: "Simple. Reliable. Secure messaging and calling for everyone.",
		Icon:        "fab fa-whatsapp",
		DownloadURL: "https://apkpure.com/whatsapp-messenger/com.whatsapp/downloading",
		IsHot:       true,
		Badges:      []string{"data-sharing"},
	},
	{
		ID:          "instagram",
		Name:        "Instagram",
		Developer:   "Instagram",
		Category:    "social",
		Rating:      4.2,
		Description: "Create and share your photos, stories, and videos with friends.",
		Icon:        "fab fa-instagram",
		DownloadURL: "https://apkpure.com/instagram/com.instagram.android/downloading",
		Badges:      []string{"data-sharing"},
	},
	{
		ID:          "tiktok",
		Name:        "TikTok",
		Developer:   "TikTok Ltd.",
		Category:    "entertainment",
		Rating:      4.4,
		Description: "Create short videos with music, filters and new effects.",
		Icon:        "fab fa-tiktok",
		DownloadURL: "https://apkpure.com/tiktok/com.zhiliaoapp.musically/downloading",
		Badges:      []string{"data-sharing"},
	},
	{
		ID:          "spotify",
		Name:        "Spotify",
		Developer:   "Spotify Ltd.",
		Category:    "music",
		Rating:      4.3,
		Description: "Play millions of songs and podcasts on your device.",
		Icon:        "fab fa-spotify",
		DownloadURL: "https://apkpure.com/spotify-music-and-podcasts/com.spotify.music/downloading",
	},
	{
		ID:          "facebook",
		Name:        "Facebook",
		Developer:   "Meta Platforms, Inc.",
		Category:    "social",
		Rating:      3.9,
		Description: "Connect with friends, family and people who share your interests.",
		Icon:        "fab fa-facebook",
		DownloadURL: "https://apkpure.com/facebook/com.facebook.katana/downloading",
		Badges:      []string{"data-sharing"},
	},
	{
		ID:          "telegram",
		Name:        "Telegram",
		Developer:   "Telegram FZ-LLC",
		Category:    "social",
		Rating:      4.5,
		Description: "Fast and secure messaging app with powerful features.",
		Icon:        "fab fa-telegram",
		DownloadURL: "https://apkpure.com/telegram/org.telegram.messenger/downloading",
	},
	{
		ID:          "vlc",
		Name:        "VLC Media Player",
		Developer:   "VideoLAN",
		Category:    "entertainment",
		Rating:      4.5,
		Description: "Free and open source cross-platform multimedia player.",
		Icon:        "fas fa-play",
		DownloadURL: "https://apkpure.com/vlc-for-android/org.videolan.vlc/downloading",
	},
	{
		ID:          "pubg",
		Name:        "PUBG Mobile",
		Developer:   "PUBG Corporation",
		Category:    "games",
		Rating:      4.0,
		Description: "The most intense free-to-play multiplayer action on mobile.",
		Icon:        "fas fa-crosshairs",
		DownloadURL: "https://apkpure.com/pubg-mobile/com.tencent.ig/downloading",
	},
	{
		ID:          "zoom",
		Name:        "Zoom",
		Developer:   "Zoom Video Communications",
		Category:    "productivity",
		Rating:      4.1,
		Description: "Video conferencing, web conferencing, online meetings.",
		Icon:        "fas fa-video",
		DownloadURL: "https://apkpure.com/zoom-cloud-meetings/us.zoom.videomeetings/downloading",
	},
	{
		ID:          "snapchat",
		Name:        "Snapchat",
		Developer:   "Snap Inc",
		Category:    "social",
		Rating:      4.0,
		Description: "Share the moment with your friends and family.",
		Icon:        "fab fa-snapchat",
		DownloadURL: "https://apkpure.com/snapchat/com.snapchat.android/downloading",
	},
	{
		ID:          "pinterest",
		Name:        "Pinterest",
		Developer:   "Pinterest",
		Category:    "social",
		Rating:      4.4,
		Description: "Discover recipes, home ideas, style inspiration and more.",
		Icon:        "fab fa-pinterest",
		DownloadURL: "https://apkpure.com/pinterest/com.pinterest/downloading",
	},
	{
		ID:          "linkedin",
		Name:        "LinkedIn",
		Developer:   "LinkedIn Corporation",
		Category:    "productivity",
		Rating:      4.1,
		Description: "Professional network to advance your career.",
		Icon:        "fab fa-linkedin",
		DownloadURL: "https://apkpure.com/linkedin/com.linkedin.android/downloading",
	},
	{
		ID:          "termux",
		Name:        "Termux",
		Developer:   "Fredrik Fornwall",
		Category:    "productivity",
		Rating:      4.4,
		Description: "Terminal emulator and Linux environment for Android.",
		Icon:        "fas fa-terminal",
		DownloadURL: "https://apkpure.com/termux/com.termux/downloading",
	},
	{
		ID:          "roblox",
		Name:        "Roblox",
		Developer:   "Roblox Corporation",
		Category:    "games",
		Rating:      4.4,
		Description: "Join millions of people and discover an infinite variety of immersive experiences.",
		Icon:        "fas fa-cube",
		DownloadURL: "https://apkpure.com/roblox/com.roblox.client/downloading",
		IsHot:       true,
	},
	{
		ID:          "gmail",
		Name:        "Gmail",
		Developer:   "Google LLC",
		Category:    "productivity",
		Rating:      4.2,
		Description: "Fast, secure, and up to 15 GB of storage for your emails.",
		Icon:        "fas fa-envelope",
		DownloadURL: "https://apkpure.com/gmail/com.google.android.gm/downloading",
		IsHot:       true,
		Badges:      []string{"data-sharing"},
	},
	{
		ID:          "brave-browser",
		Name:        "Brave Browser",
		Developer:   "Brave Software",
		Category:    "productivity",
		Rating:      4.5,
		Description: "Fast, private browser that blocks ads and trackers.",
		Icon:        "fas fa-shield-alt",
		DownloadURL: "https://apkpure.com/brave-browser/com.brave.browser/downloading",
	},
	{
		ID:          "google-chrome",
		Name:        "Google Chrome",
		Developer:   "Google LLC",
		Category:    "productivity",
		Rating:      4.0,
		Description: "Fast, secure web browser with Google services integration.",
		Icon:        "fab fa-chrome",
		DownloadURL: "https://apkpure.com/chrome-browser/com.android.chrome/downloading",
	},
	{
		ID:          "among-us",
		Name:        "Among Us",
		Developer:   "InnerSloth LLC",
		Category:    "games",
		Rating:      4.2,
		Description: "Find the impostor among your crewmates in this social deduction game.",
		Icon:        "fas fa-user-secret",
		DownloadURL: "https://apkpure.com/among-us/com.innersloth.spacemafia/downloading",
		IsHot:       true,
	},
	{
		ID:          "AcueStar",
		Name:        "Acue Star Launcher",
		Developer:   "Acue ISD",
		Category:    "social",
		Rating:      4.0,
		Description: "Want to upgrade your android experience? Acue Star launcher is for you!",
		Icon:        "fab fa-acue",
		DownloadURL: "https://apkpure.com/skype/com.skype.raider/downloading",
		Badges:      []string{"unstable"},
	},
	{
		ID:          "clash-of-clans",
		Name:        "Clash of Clans",
		Developer:   "Supercell",
		Category:    "games",
		Rating:      4.5,
		Description: "Build your village, raise an army, and battle with millions of players.",
		Icon:        "fas fa-shield-alt",
		DownloadURL: "https://apkpure.com/clash-of-clans/com.supercell.clashofclans/downloading",
		IsHot:       true,
	},
	{
		ID:          "simple-gallery",
		Name:        "Simple Gallery",
		Developer:   "Simple Mobile Tools",
		Category:    "photography",
		Rating:      4.6,
		Description: "A simple tool used for viewing photos and videos.",
		Icon:        "fas fa-images",
		DownloadURL: "https://apkpure.com/simple-gallery/com.simplemobiletools.gallery/downloading",
	},
	{
		ID:          "google-photos",
		Name:        "Google Photos",
		Developer:   "Google LLC",
		Category:    "photography",
		Rating:      4.2,
		Description: "Backup photos and videos with 15GB of free storage.",
		Icon:        "fas fa-images",
		DownloadURL: "https://apkpure.com/google-photos/com.google.android.apps.photos/downloading",
	},
	{
		ID:          "minecraft",
		Name:        "Minecraft",
		Developer:   "Mojang",
		Category:    "games",
		Rating:      4.4,
		Description: "Build, explore, and survive in infinite worlds.",
		Icon:        "fas fa-cubes",
		DownloadURL: "https://apkpure.com/minecraft/com.mojang.minecraftpe/downloading",
		IsHot:       true,
	},
	{
		ID:          "discord",
		Name:        "Discord",
		Developer:   "Discord Inc.",
		Category:    "social",
		Rating:      4.3,
		Description: "Chat, hang out, and stay close with your friends and communities.",
		Icon:        "fab fa-discord",
		DownloadURL: "https://apkpure.com/discord-chat-talk-hangout/com.discord/downloading",
		IsHot:       true,
	},
	{
		ID:          "valorant-mobile",
		Name:        "VALORANT Mobile",
		Developer:   "Riot Games",
		Category:    "games",
		Rating:      4.1,
		Description: "Tactical 5v5 character-based shooter.",
		Icon:        "fas fa-bullseye",
		DownloadURL: "https://apkpure.com/valorant-mobile/com.riotgames.valorantmobile/downloading",
		Badges:      []string{"unstable"},
	},
	{
		ID:          "facebook-messenger",
		Name:        "Messenger",
		Developer:   "Meta Platforms, Inc.",
		Category:    "social",
		Rating:      4.0,
		Description: "Free messaging app to connect with friends.",
		Icon:        "fab fa-facebook-messenger",
		DownloadURL: "https://apkpure.com/messenger/com.facebook.orca/downloading",
		Badges:      []string{"data-sharing"},
	},
}
