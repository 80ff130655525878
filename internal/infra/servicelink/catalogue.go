package servicelink

// Link is one known service and where its subscription can be cancelled.
type Link struct {
	Service string
	URL     string
	Aliases []string
}

// DefaultCatalogue is ordered: earlier entries win substring matches.
var DefaultCatalogue = []Link{
	{Service: "netflix", URL: "https://www.netflix.com/account", Aliases: []string{"netflix.com", "netflix streaming"}},
	{Service: "spotify", URL: "https://www.spotify.com/account/subscription/", Aliases: []string{"spotify premium"}},
	{Service: "amazon prime", URL: "https://www.amazon.com/mc/account/manage-memberships-and-subscriptions", Aliases: []string{"prime", "amazon prime video", "prime video", "amazon"}},
	{Service: "disney plus", URL: "https://www.disneyplus.com/account", Aliases: []string{"disney+", "disneyplus", "disney plus streaming"}},
	{Service: "hulu", URL: "https://help.hulu.com/s/article/cancel-subscription", Aliases: []string{"hulu plus"}},
	{Service: "apple music", URL: "https://support.apple.com/en-us/HT202039", Aliases: []string{"apple music subscription", "itunes music"}},
	{Service: "youtube premium", URL: "https://www.youtube.com/paid_memberships", Aliases: []string{"youtube red", "youtube music premium"}},
	{Service: "adobe", URL: "https://www.adobe.com/account/cancel-subscription.html", Aliases: []string{"adobe creative cloud", "adobe cc", "photoshop", "premiere pro"}},
	{Service: "microsoft 365", URL: "https://account.microsoft.com/services", Aliases: []string{"office 365", "microsoft office", "office subscription"}},
	{Service: "dropbox", URL: "https://www.dropbox.com/account/billing", Aliases: []string{"dropbox plus", "dropbox professional"}},
	{Service: "notion", URL: "https://www.notion.so/help/cancel-your-subscription", Aliases: []string{"notion.so"}},
	{Service: "figma", URL: "https://www.figma.com/settings/billing", Aliases: []string{"figma professional"}},
	{Service: "canva", URL: "https://www.canva.com/account/billing", Aliases: []string{"canva pro"}},
	{Service: "grammarly", URL: "https://www.grammarly.com/settings", Aliases: []string{"grammarly premium"}},
	{Service: "linkedin", URL: "https://www.linkedin.com/psettings/premium", Aliases: []string{"linkedin premium"}},
	{Service: "audible", URL: "https://www.audible.com/account/cancel-membership", Aliases: []string{"amazon audible"}},
	{Service: "twitch", URL: "https://www.twitch.tv/settings/subscriptions", Aliases: []string{"twitch prime", "twitch turbo"}},
	{Service: "discord", URL: "https://discord.com/settings/subscriptions", Aliases: []string{"discord nitro"}},
	{Service: "github", URL: "https://github.com/settings/billing", Aliases: []string{"github pro", "github team"}},
	{Service: "slack", URL: "https://slack.com/account/settings", Aliases: []string{"slack workspace"}},
	{Service: "hbo max", URL: "https://www.hbomax.com/account", Aliases: []string{"hbo", "max", "hbo max streaming"}},
	{Service: "paramount plus", URL: "https://www.paramountplus.com/account", Aliases: []string{"paramount+", "paramount", "cbs all access"}},
	{Service: "peacock", URL: "https://www.peacocktv.com/account", Aliases: []string{"nbc peacock", "peacock tv"}},
	{Service: "apple tv plus", URL: "https://tv.apple.com/account", Aliases: []string{"apple tv", "apple tv+"}},
	{Service: "showtime", URL: "https://www.showtime.com/account", Aliases: []string{"showtime anytime"}},
	{Service: "starz", URL: "https://www.starz.com/account", Aliases: []string{"starzplay"}},
	{Service: "crunchyroll", URL: "https://www.crunchyroll.com/account", Aliases: []string{"crunchyroll premium"}},
	{Service: "fubo", URL: "https://www.fubo.tv/account", Aliases: []string{"fubotv", "fubo tv"}},
	{Service: "sling", URL: "https://www.sling.com/account", Aliases: []string{"sling tv"}},
	{Service: "tidal", URL: "https://tidal.com/account", Aliases: []string{"tidal hifi"}},
	{Service: "pandora", URL: "https://www.pandora.com/account", Aliases: []string{"pandora plus", "pandora premium"}},
	{Service: "deezer", URL: "https://www.deezer.com/account", Aliases: []string{"deezer premium"}},
	{Service: "autodesk", URL: "https://accounts.autodesk.com/", Aliases: []string{"autocad", "maya", "3ds max"}},
	{Service: "obsidian", URL: "https://obsidian.md/account", Aliases: []string{"obsidian sync"}},
	{Service: "roam research", URL: "https://roamresearch.com/account", Aliases: []string{"roam"}},
	{Service: "evernote", URL: "https://www.evernote.com/AccountSettings.action", Aliases: []string{"evernote premium"}},
	{Service: "onenote", URL: "https://account.microsoft.com/services"},
	{Service: "google drive", URL: "https://one.google.com/storage", Aliases: []string{"google one", "google storage"}},
	{Service: "icloud", URL: "https://www.icloud.com/settings/", Aliases: []string{"apple icloud", "icloud storage"}},
	{Service: "onedrive", URL: "https://account.microsoft.com/services", Aliases: []string{"microsoft onedrive"}},
	{Service: "pcloud", URL: "https://www.pcloud.com/account", Aliases: []string{"pcloud premium"}},
	{Service: "adobe stock", URL: "https://www.adobe.com/account/cancel-subscription.html"},
	{Service: "shutterstock", URL: "https://www.shutterstock.com/account", Aliases: []string{"shutterstock subscription"}},
	{Service: "zoom", URL: "https://zoom.us/account", Aliases: []string{"zoom pro", "zoom business"}},
	{Service: "teams", URL: "https://admin.microsoft.com/Adminportal/Home", Aliases: []string{"microsoft teams"}},
	{Service: "playstation plus", URL: "https://www.playstation.com/en-us/account/", Aliases: []string{"ps plus", "playstation network", "psn"}},
	{Service: "xbox game pass", URL: "https://account.microsoft.com/services", Aliases: []string{"xbox live", "game pass", "xbox gold"}},
	{Service: "nintendo switch online", URL: "https://accounts.nintendo.com/", Aliases: []string{"nintendo online", "switch online"}},
	{Service: "steam", URL: "https://store.steampowered.com/account/"},
	{Service: "peloton", URL: "https://www.onepeloton.com/account", Aliases: []string{"peloton app"}},
	{Service: "strava", URL: "https://www.strava.com/account", Aliases: []string{"strava premium"}},
	{Service: "myfitnesspal", URL: "https://www.myfitnesspal.com/account", Aliases: []string{"mfp premium"}},
	{Service: "calm", URL: "https://www.calm.com/account", Aliases: []string{"calm app"}},
	{Service: "headspace", URL: "https://www.headspace.com/account", Aliases: []string{"headspace app"}},
	{Service: "new york times", URL: "https://www.nytimes.com/subscription", Aliases: []string{"nytimes", "ny times", "new york times subscription"}},
	{Service: "washington post", URL: "https://www.washingtonpost.com/subscriptions/", Aliases: []string{"wapo", "washington post subscription"}},
	{Service: "wall street journal", URL: "https://account.wsj.com/", Aliases: []string{"wsj", "wall street journal subscription"}},
	{Service: "kindle unlimited", URL: "https://www.amazon.com/kindle-dbs/hz/signup", Aliases: []string{"kindle", "amazon kindle"}},
	{Service: "doordash", URL: "https://www.doordash.com/account", Aliases: []string{"doordash dashpass"}},
	{Service: "uber eats", URL: "https://www.ubereats.com/account", Aliases: []string{"ubereats pass"}},
	{Service: "instacart", URL: "https://www.instacart.com/account", Aliases: []string{"instacart express"}},
	{Service: "costco", URL: "https://www.costco.com/account", Aliases: []string{"costco membership"}},
	{Service: "walmart plus", URL: "https://www.walmart.com/account", Aliases: []string{"walmart+", "walmart plus membership"}},
	{Service: "gitlab", URL: "https://gitlab.com/-/profile/subscriptions", Aliases: []string{"gitlab premium"}},
	{Service: "jetbrains", URL: "https://account.jetbrains.com/", Aliases: []string{"intellij", "webstorm", "pycharm"}},
	{Service: "sublime text", URL: "https://www.sublimetext.com/account", Aliases: []string{"sublime"}},
	{Service: "nordvpn", URL: "https://my.nordaccount.com/", Aliases: []string{"nord vpn"}},
	{Service: "expressvpn", URL: "https://www.expressvpn.com/account", Aliases: []string{"express vpn"}},
	{Service: "surfshark", URL: "https://surfshark.com/account", Aliases: []string{"surfshark vpn"}},
	{Service: "1password", URL: "https://1password.com/account", Aliases: []string{"1password subscription"}},
	{Service: "lastpass", URL: "https://www.lastpass.com/account", Aliases: []string{"lastpass premium"}},
	{Service: "dashlane", URL: "https://www.dashlane.com/account", Aliases: []string{"dashlane premium"}},
	{Service: "scribd", URL: "https://www.scribd.com/account", Aliases: []string{"scribd subscription"}},
	{Service: "masterclass", URL: "https://www.masterclass.com/account", Aliases: []string{"masterclass subscription"}},
	{Service: "skillshare", URL: "https://www.skillshare.com/account", Aliases: []string{"skillshare premium"}},
	{Service: "coursera", URL: "https://www.coursera.org/account", Aliases: []string{"coursera plus"}},
}
