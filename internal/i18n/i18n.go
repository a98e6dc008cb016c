// Package i18n holds the localized user-facing strings for error
// responses. Translations live in code rather than external files so a
// missing locale can never fail at runtime; unknown languages and missing
// keys fall back to English.
package i18n

// Message keys understood by T.
const (
	KeyInvalidLink   = "error_invalid_link"
	KeyRateLimited   = "error_rate_limited"
	KeyPrivateTitle  = "modal_private_title"
	KeyPrivateBody   = "modal_private_body"
	KeyMismatchTitle = "modal_mismatch_title"
	KeyMismatchVideo = "modal_mismatch_video"
	KeyMismatchPhoto = "modal_mismatch_photo"
	KeyMismatchReel  = "modal_mismatch_reel"
)

// DefaultLang is the fallback for unknown languages and missing keys.
const DefaultLang = "en"

var tables = map[string]map[string]string{
	"en": {
		KeyInvalidLink:   "Please paste a valid Instagram post or reel link.",
		KeyRateLimited:   "Too many requests. Please wait a moment and try again.",
		KeyPrivateTitle:  "Private Account",
		KeyPrivateBody:   "This Instagram account is private. Media cannot be downloaded.",
		KeyMismatchTitle: "Wrong Media Type",
		KeyMismatchVideo: "This link is an image. Please select the Photo tab.",
		KeyMismatchPhoto: "This link is a video. Please select Video or Reels.",
		KeyMismatchReel:  "This link is not a reel. Please select Video.",
	},
	"ar": {
		KeyPrivateTitle:  "Ø­Ø³Ø§Ø¨ Ø®Ø§Øµ",
		KeyPrivateBody:   "Ù‡Ø°Ø§ Ø§Ù„Ø­Ø³Ø§Ø¨ Ø®Ø§Øµ. Ù„Ø§ ÙŠÙ…ÙƒÙ† ØªÙ†Ø²ÙŠÙ„ Ø§Ù„ÙˆØ³Ø§Ø¦Ø·.",
		KeyMismatchTitle: "Ù†ÙˆØ¹ ØºÙŠØ± ØµØ­ÙŠØ­",
		KeyMismatchVideo: "Ù‡Ø°Ø§ Ø§Ù„Ø±Ø§Ø¨Ø· Ù„ØµÙˆØ±Ø©. Ø§Ø®ØªØ± ØªØ¨ÙˆÙŠØ¨ Ø§Ù„ØµÙˆØ±.",
		KeyMismatchPhoto: "Ù‡Ø°Ø§ Ø§Ù„Ø±Ø§Ø¨Ø· Ù„ÙÙŠØ¯ÙŠÙˆ. Ø§Ø®ØªØ± Ø§Ù„ÙÙŠØ¯ÙŠÙˆ Ø£Ùˆ Ø§Ù„Ø±ÙŠÙ„Ø².",
		KeyMismatchReel:  "Ù‡Ø°Ø§ Ø§Ù„Ø±Ø§Ø¨Ø· Ù„ÙŠØ³ Ø±ÙŠÙ„Ø². Ø§Ø®ØªØ± Ø§Ù„ÙÙŠØ¯ÙŠÙˆ.",
	},
	"bn": {
		KeyPrivateTitle:  "à¦ªà§à¦°à¦¾à¦‡à¦­à§‡à¦Ÿ à¦…à§à¦¯à¦¾à¦•à¦¾à¦‰à¦¨à§à¦Ÿ",
		KeyPrivateBody:   "à¦à¦‡ à¦…à§à¦¯à¦¾à¦•à¦¾à¦‰à¦¨à§à¦Ÿà¦Ÿà¦¿ à¦ªà§à¦°à¦¾à¦‡à¦­à§‡à¦Ÿà¥¤ à¦®à¦¿à¦¡à¦¿à¦¯à¦¼à¦¾ à¦¡à¦¾à¦‰à¦¨à¦²à§‹à¦¡ à¦•à¦°à¦¾ à¦¯à¦¾à¦¬à§‡ à¦¨à¦¾à¥¤",
		KeyMismatchTitle: "à¦­à§à¦² à¦®à¦¿à¦¡à¦¿à¦¯à¦¼à¦¾ à¦Ÿà¦¾à¦‡à¦ª",
		KeyMismatchVideo: "à¦à¦‡ à¦²à¦¿à¦‚à¦•à¦Ÿà¦¿ à¦›à¦¬à¦¿à¥¤ à¦«à¦Ÿà§‹ à¦Ÿà§à¦¯à¦¾à¦¬ à¦¨à¦¿à¦°à§à¦¬à¦¾à¦šà¦¨ à¦•à¦°à§à¦¨à¥¤",
		KeyMismatchPhoto: "à¦à¦‡ à¦²à¦¿à¦‚à¦•à¦Ÿà¦¿ à¦­à¦¿à¦¡à¦¿à¦“à¥¤ à¦­à¦¿à¦¡à¦¿à¦“ à¦¬à¦¾ à¦°à¦¿à¦²à¦¸ à¦Ÿà§à¦¯à¦¾à¦¬ à¦¨à¦¿à¦°à§à¦¬à¦¾à¦šà¦¨ à¦•à¦°à§à¦¨à¥¤",
		KeyMismatchReel:  "à¦à¦‡ à¦²à¦¿à¦‚à¦•à¦Ÿà¦¿ à¦°à¦¿à¦² à¦¨à¦¯à¦¼à¥¤ à¦­à¦¿à¦¡à¦¿à¦“ à¦¨à¦¿à¦°à§à¦¬à¦¾à¦šà¦¨ à¦•à¦°à§à¦¨à¥¤",
	},
	"zh": {
		KeyPrivateTitle:  "ç§å¯†è´¦å·",
		KeyPrivateBody:   "è¯¥è´¦å·ä¸ºç§å¯†è´¦å·ï¼Œæ— æ³•ä¸‹è½½åª’ä½“ã€‚",
		KeyMismatchTitle: "ç±»å‹ä¸åŒ¹é…",
		KeyMismatchVideo: "è¯¥é“¾æ¥æ˜¯å›¾ç‰‡ï¼Œè¯·é€‰æ‹©ç…§ç‰‡æ ‡ç­¾ã€‚",
		KeyMismatchPhoto: "è¯¥é“¾æ¥æ˜¯è§†é¢‘ï¼Œè¯·é€‰æ‹©è§†é¢‘æˆ– Reels æ ‡ç­¾ã€‚",
		KeyMismatchReel:  "è¯¥é“¾æ¥ä¸æ˜¯ Reelsï¼Œè¯·é€‰æ‹©è§†é¢‘ã€‚",
	},
	"fr": {
		KeyPrivateTitle:  "Compte privÃ©",
		KeyPrivateBody:   "Ce compte est privÃ©. Impossible de tÃ©lÃ©charger.",
		KeyMismatchTitle: "Type incorrect",
		KeyMismatchVideo: "Ce lien est une image. SÃ©lectionnez lâ€™onglet Photo.",
		KeyMismatchPhoto: "Ce lien est une vidÃ©o. SÃ©lectionnez VidÃ©o ou Reels.",
		KeyMismatchReel:  "Ce lien nâ€™est pas un reel. SÃ©lectionnez VidÃ©o.",
	},
	"de": {
		KeyPrivateTitle:  "Privates Konto",
		KeyPrivateBody:   "Dieses Konto ist privat. Medien kÃ¶nnen nicht heruntergeladen werden.",
		KeyMismatchTitle: "Falscher Medientyp",
		KeyMismatchVideo: "Dieser Link ist ein Bild. Bitte Foto-Tab wÃ¤hlen.",
		KeyMismatchPhoto: "Dieser Link ist ein Video. Bitte Video oder Reels wÃ¤hlen.",
		KeyMismatchReel:  "Dieser Link ist kein Reel. Bitte Video wÃ¤hlen.",
	},
	"hi": {
		KeyPrivateTitle:  "à¤ªà¥à¤°à¤¾à¤‡à¤µà¥‡à¤Ÿ à¤…à¤•à¤¾à¤‰à¤‚à¤Ÿ",
		KeyPrivateBody:   "à¤¯à¤¹ à¤…à¤•à¤¾à¤‰à¤‚à¤Ÿ à¤ªà¥à¤°à¤¾à¤‡à¤µà¥‡à¤Ÿ à¤¹à¥ˆà¥¤ à¤®à¥€à¤¡à¤¿à¤¯à¤¾ à¤¡à¤¾à¤‰à¤¨à¤²à¥‹à¤¡ à¤¨à¤¹à¥€à¤‚ à¤¹à¥‹ à¤¸à¤•à¤¤à¤¾à¥¤",
		KeyMismatchTitle: "à¤—à¤²à¤¤ à¤®à¥€à¤¡à¤¿à¤¯à¤¾ à¤ªà¥à¤°à¤•à¤¾à¤°",
		KeyMismatchVideo: "à¤¯à¤¹ à¤²à¤¿à¤‚à¤• à¤«à¥‹à¤Ÿà¥‹ à¤•à¤¾ à¤¹à¥ˆà¥¤ à¤«à¥‹à¤Ÿà¥‹ à¤Ÿà¥ˆà¤¬ à¤šà¥à¤¨à¥‡à¤‚à¥¤",
		KeyMismatchPhoto: "à¤¯à¤¹ à¤²à¤¿à¤‚à¤• à¤µà¥€à¤¡à¤¿à¤¯à¥‹ à¤•à¤¾ à¤¹à¥ˆà¥¤ à¤µà¥€à¤¡à¤¿à¤¯à¥‹ à¤¯à¤¾ à¤°à¥€à¤²à¥à¤¸ à¤Ÿà¥ˆà¤¬ à¤šà¥à¤¨à¥‡à¤‚à¥¤",
		KeyMismatchReel:  "à¤¯à¤¹ à¤²à¤¿à¤‚à¤• à¤°à¥€à¤² à¤¨à¤¹à¥€à¤‚ à¤¹à¥ˆà¥¤ à¤µà¥€à¤¡à¤¿à¤¯à¥‹ à¤šà¥à¤¨à¥‡à¤‚à¥¤",
	},
	"hu": {
		KeyPrivateTitle:  "PrivÃ¡t fiÃ³k",
		KeyPrivateBody:   "Ez a fiÃ³k privÃ¡t. Nem tÃ¶lthetÅ‘ le.",
		KeyMismatchTitle: "Rossz mÃ©diatÃ­pus",
		KeyMismatchVideo: "Ez a link kÃ©p. VÃ¡laszd a FotÃ³ fÃ¼let.",
		KeyMismatchPhoto: "Ez a link videÃ³. VÃ¡laszd a VideÃ³ vagy Reels fÃ¼let.",
		KeyMismatchReel:  "Ez a link nem reels. VÃ¡laszd a VideÃ³ fÃ¼let.",
	},
	"id": {
		KeyPrivateTitle:  "Akun Privat",
		KeyPrivateBody:   "Akun ini privat. Media tidak dapat diunduh.",
		KeyMismatchTitle: "Jenis Media Salah",
		KeyMismatchVideo: "Tautan ini adalah gambar. Pilih tab Foto.",
		KeyMismatchPhoto: "Tautan ini adalah video. Pilih tab Video atau Reels.",
		KeyMismatchReel:  "Tautan ini bukan reels. Pilih tab Video.",
	},
	"it": {
		KeyPrivateTitle:  "Account privato",
		KeyPrivateBody:   "Questo account Ã¨ privato. Impossibile scaricare.",
		KeyMismatchTitle: "Tipo di media errato",
		KeyMismatchVideo: "Questo link Ã¨ unâ€™immagine. Seleziona Foto.",
		KeyMismatchPhoto: "Questo link Ã¨ un video. Seleziona Video o Reels.",
		KeyMismatchReel:  "Questo link non Ã¨ un reel. Seleziona Video.",
	},
	"ja": {
		KeyPrivateTitle:  "éå…¬é–‹ã‚¢ã‚«ã‚¦ãƒ³ãƒˆ",
		KeyPrivateBody:   "ã“ã®ã‚¢ã‚«ã‚¦ãƒ³ãƒˆã¯éå…¬é–‹ã§ã™ã€‚ãƒ€ã‚¦ãƒ³ãƒ­ãƒ¼ãƒ‰ã§ãã¾ã›ã‚“ã€‚",
		KeyMismatchTitle: "ãƒ¡ãƒ‡ã‚£ã‚¢ã‚¿ã‚¤ãƒ—ãŒé•ã„ã¾ã™",
		KeyMismatchVideo: "ã“ã®ãƒªãƒ³ã‚¯ã¯ç”»åƒã§ã™ã€‚å†™çœŸã‚¿ãƒ–ã‚’é¸æŠã—ã¦ãã ã•ã„ã€‚",
		KeyMismatchPhoto: "ã“ã®ãƒªãƒ³ã‚¯ã¯å‹•ç”»ã§ã™ã€‚å‹•ç”»ã¾ãŸã¯ãƒªãƒ¼ãƒ«ã‚’é¸æŠã—ã¦ãã ã•ã„ã€‚",
		KeyMismatchReel:  "ã“ã®ãƒªãƒ³ã‚¯ã¯ãƒªãƒ¼ãƒ«ã§ã¯ã‚ã‚Šã¾ã›ã‚“ã€‚å‹•ç”»ã‚’é¸æŠã—ã¦ãã ã•ã„ã€‚",
	},
	"ko": {
		KeyPrivateTitle:  "ë¹„ê³µê°œ ê³„ì •",
		KeyPrivateBody:   "ì´ ê³„ì •ì€ ë¹„ê³µê°œì…ë‹ˆë‹¤. ë‹¤ìš´ë¡œë“œí•  ìˆ˜ ì—†ìŠµë‹ˆë‹¤.",
		KeyMismatchTitle: "ì˜ëª»ëœ ë¯¸ë””ì–´ ìœ í˜•",
		KeyMismatchVideo: "ì´ ë§í¬ëŠ” ì´ë¯¸ì§€ì…ë‹ˆë‹¤. ì‚¬ì§„ íƒ­ì„ ì„ íƒí•˜ì„¸ìš”.",
		KeyMismatchPhoto: "ì´ ë§í¬ëŠ” ë™ì˜ìƒì…ë‹ˆë‹¤. ë™ì˜ìƒ ë˜ëŠ” ë¦´ìŠ¤ íƒ­ì„ ì„ íƒí•˜ì„¸ìš”.",
		KeyMismatchReel:  "ì´ ë§í¬ëŠ” ë¦´ìŠ¤ê°€ ì•„ë‹™ë‹ˆë‹¤. ë™ì˜ìƒ íƒ­ì„ ì„ íƒí•˜ì„¸ìš”.",
	},
	"pl": {
		KeyPrivateTitle:  "Konto prywatne",
		KeyPrivateBody:   "To konto jest prywatne. Nie moÅ¼na pobraÄ‡.",
		KeyMismatchTitle: "BÅ‚Ä™dny typ",
		KeyMismatchVideo: "Ten link to obraz. Wybierz zakÅ‚adkÄ™ ZdjÄ™cie.",
		KeyMismatchPhoto: "Ten link to wideo. Wybierz Wideo lub Reels.",
		KeyMismatchReel:  "Ten link nie jest reels. Wybierz Wideo.",
	},
	"pt": {
		KeyPrivateTitle:  "Conta privada",
		KeyPrivateBody:   "Esta conta Ã© privada. NÃ£o Ã© possÃ­vel baixar.",
		KeyMismatchTitle: "Tipo incorreto",
		KeyMismatchVideo: "Este link Ã© uma imagem. Selecione a aba Foto.",
		KeyMismatchPhoto: "Este link Ã© um vÃ­deo. Selecione VÃ­deo ou Reels.",
		KeyMismatchReel:  "Este link nÃ£o Ã© reels. Selecione VÃ­deo.",
	},
	"ru": {
		KeyPrivateTitle:  "ĞŸÑ€Ğ¸Ğ²Ğ°Ñ‚Ğ½Ñ‹Ğ¹ Ğ°ĞºĞºĞ°ÑƒĞ½Ñ‚",
		KeyPrivateBody:   "Ğ­Ñ‚Ğ¾Ñ‚ Ğ°ĞºĞºĞ°ÑƒĞ½Ñ‚ Ğ¿Ñ€Ğ¸Ğ²Ğ°Ñ‚Ğ½Ñ‹Ğ¹. Ğ¡ĞºĞ°Ñ‡Ğ¸Ğ²Ğ°Ğ½Ğ¸Ğµ Ğ½ĞµĞ²Ğ¾Ğ·Ğ¼Ğ¾Ğ¶Ğ½Ğ¾.",
		KeyMismatchTitle: "ĞĞµĞ²ĞµÑ€Ğ½Ñ‹Ğ¹ Ñ‚Ğ¸Ğ¿",
		KeyMismatchVideo: "Ğ­Ñ‚Ğ¾ Ğ¸Ğ·Ğ¾Ğ±Ñ€Ğ°Ğ¶ĞµĞ½Ğ¸Ğµ. Ğ’Ñ‹Ğ±ĞµÑ€Ğ¸Ñ‚Ğµ Ğ²ĞºĞ»Ğ°Ğ´ĞºÑƒ Ğ¤Ğ¾Ñ‚Ğ¾.",
		KeyMismatchPhoto: "Ğ­Ñ‚Ğ¾ Ğ²Ğ¸Ğ´ĞµĞ¾. Ğ’Ñ‹Ğ±ĞµÑ€Ğ¸Ñ‚Ğµ Ğ’Ğ¸Ğ´ĞµĞ¾ Ğ¸Ğ»Ğ¸ Reels.",
		KeyMismatchReel:  "Ğ­Ñ‚Ğ¾ Ğ½Ğµ reels. Ğ’Ñ‹Ğ±ĞµÑ€Ğ¸Ñ‚Ğµ Ğ’Ğ¸Ğ´ĞµĞ¾.",
	},
	"es": {
		KeyPrivateTitle:  "Cuenta privada",
		KeyPrivateBody:   "Esta cuenta es privada. No se puede descargar.",
		KeyMismatchTitle: "Tipo incorrecto",
		KeyMismatchVideo: "Este enlace es una imagen. Selecciona la pestaÃ±a Foto.",
		KeyMismatchPhoto: "Este enlace es un video. Selecciona Video o Reels.",
		KeyMismatchReel:  "Este enlace no es un reel. Selecciona Video.",
	},
	"sw": {
		KeyPrivateTitle:  "Akaunti Binafsi",
		KeyPrivateBody:   "Akaunti hii ni binafsi. Haiwezi kupakuliwa.",
		KeyMismatchTitle: "Aina isiyo sahihi",
		KeyMismatchVideo: "Kiungo hiki ni picha. Chagua kichupo cha Picha.",
		KeyMismatchPhoto: "Kiungo hiki ni video. Chagua Video au Reels.",
		KeyMismatchReel:  "Kiungo hiki si reels. Chagua Video.",
	},
	"te": {
		KeyPrivateTitle:  "à°ªà±à°°à±ˆà°µà±‡à°Ÿà± à°…à°•à±Œà°‚à°Ÿà±",
		KeyPrivateBody:   "à°ˆ à°…à°•à±Œà°‚à°Ÿà± à°ªà±à°°à±ˆà°µà±‡à°Ÿà±. à°®à±€à°¡à°¿à°¯à°¾ à°¡à±Œà°¨à±â€Œà°²à±‹à°¡à± à°•à°¾à°¦à±.",
		KeyMismatchTitle: "à°¤à°ªà±à°ªà± à°®à±€à°¡à°¿à°¯à°¾ à°Ÿà±ˆà°ªà±",
		KeyMismatchVideo: "à°ˆ à°²à°¿à°‚à°•à± à°«à±‹à°Ÿà±‹. à°«à±‹à°Ÿà±‹ à°Ÿà±à°¯à°¾à°¬à± à°à°‚à°šà±à°•à±‹à°‚à°¡à°¿.",
		KeyMismatchPhoto: "à°ˆ à°²à°¿à°‚à°•à± à°µà±€à°¡à°¿à°¯à±‹. à°µà±€à°¡à°¿à°¯à±‹ à°²à±‡à°¦à°¾ à°°à±€à°²à±à°¸à± à°Ÿà±à°¯à°¾à°¬à± à°à°‚à°šà±à°•à±‹à°‚à°¡à°¿.",
		KeyMismatchReel:  "à°ˆ à°²à°¿à°‚à°•à± à°°à±€à°²à± à°•à°¾à°¦à±. à°µà±€à°¡à°¿à°¯à±‹ à°à°‚à°šà±à°•à±‹à°‚à°¡à°¿.",
	},
	"th": {
		KeyPrivateTitle:  "à¸šà¸±à¸à¸Šà¸µà¸ªà¹ˆà¸§à¸™à¸•à¸±à¸§",
		KeyPrivateBody:   "à¸šà¸±à¸à¸Šà¸µà¸™à¸µà¹‰à¹€à¸›à¹‡à¸™à¸ªà¹ˆà¸§à¸™à¸•à¸±à¸§ à¸”à¸²à¸§à¸™à¹Œà¹‚à¸«à¸¥à¸”à¹„à¸¡à¹ˆà¹„à¸”à¹‰",
		KeyMismatchTitle: "à¸›à¸£à¸°à¹€à¸ à¸—à¹„à¸¡à¹ˆà¸–à¸¹à¸à¸•à¹‰à¸­à¸‡",
		KeyMismatchVideo: "à¸¥à¸´à¸‡à¸à¹Œà¸™à¸µà¹‰à¹€à¸›à¹‡à¸™à¸£à¸¹à¸›à¸ à¸²à¸ à¸à¸£à¸¸à¸“à¸²à¹€à¸¥à¸·à¸­à¸à¹à¸—à¹‡à¸šà¸£à¸¹à¸›à¸ à¸²à¸",
		KeyMismatchPhoto: "à¸¥à¸´à¸‡à¸à¹Œà¸™à¸µà¹‰à¹€à¸›à¹‡à¸™à¸§à¸´à¸”à¸µà¹‚à¸­ à¸à¸£à¸¸à¸“à¸²à¹€à¸¥à¸·à¸­à¸à¸§à¸´à¸”à¸µà¹‚à¸­à¸«à¸£à¸·à¸­ Reels",
		KeyMismatchReel:  "à¸¥à¸´à¸‡à¸à¹Œà¸™à¸µà¹‰à¹„à¸¡à¹ˆà¹ƒà¸Šà¹ˆ Reels à¸à¸£à¸¸à¸“à¸²à¹€à¸¥à¸·à¸­à¸à¸§à¸´à¸”à¸µà¹‚à¸­",
	},
	"tr": {
		KeyPrivateTitle:  "Ã–zel Hesap",
		KeyPrivateBody:   "Bu hesap Ã¶zel. Medya indirilemez.",
		KeyMismatchTitle: "YanlÄ±ÅŸ Medya TÃ¼rÃ¼",
		KeyMismatchVideo: "Bu baÄŸlantÄ± bir gÃ¶rsel. FotoÄŸraf sekmesini seÃ§in.",
		KeyMismatchPhoto: "Bu baÄŸlantÄ± bir video. Video veya Reels seÃ§in.",
		KeyMismatchReel:  "Bu baÄŸlantÄ± reels deÄŸil. Video seÃ§in.",
	},
	"uk": {
		KeyPrivateTitle:  "ĞŸÑ€Ğ¸Ğ²Ğ°Ñ‚Ğ½Ğ¸Ğ¹ Ğ°ĞºĞ°ÑƒĞ½Ñ‚",
		KeyPrivateBody:   "Ğ¦ĞµĞ¹ Ğ°ĞºĞ°ÑƒĞ½Ñ‚ Ğ¿Ñ€Ğ¸Ğ²Ğ°Ñ‚Ğ½Ğ¸Ğ¹. Ğ—Ğ°Ğ²Ğ°Ğ½Ñ‚Ğ°Ğ¶ĞµĞ½Ğ½Ñ Ğ½ĞµĞ¼Ğ¾Ğ¶Ğ»Ğ¸Ğ²Ğµ.",
		KeyMismatchTitle: "ĞĞµĞ¿Ñ€Ğ°Ğ²Ğ¸Ğ»ÑŒĞ½Ğ¸Ğ¹ Ñ‚Ğ¸Ğ¿",
		KeyMismatchVideo: "Ğ¦Ğµ Ğ·Ğ¾Ğ±Ñ€Ğ°Ğ¶ĞµĞ½Ğ½Ñ. ĞĞ±ĞµÑ€Ñ–Ñ‚ÑŒ Ğ²ĞºĞ»Ğ°Ğ´ĞºÑƒ Ğ¤Ğ¾Ñ‚Ğ¾.",
		KeyMismatchPhoto: "Ğ¦Ğµ Ğ²Ñ–Ğ´ĞµĞ¾. ĞĞ±ĞµÑ€Ñ–Ñ‚ÑŒ Ğ’Ñ–Ğ´ĞµĞ¾ Ğ°Ğ±Ğ¾ Reels.",
		KeyMismatchReel:  "Ğ¦Ğµ Ğ½Ğµ reels. ĞĞ±ĞµÑ€Ñ–Ñ‚ÑŒ Ğ’Ñ–Ğ´ĞµĞ¾.",
	},
}

// Normalize returns lang when a translation table exists for it, and
// DefaultLang otherwise.
func Normalize(lang string) string {
	if _, ok := tables[lang]; ok {
		return lang
	}
	return DefaultLang
}

// T returns the translation of key for lang, falling back first to the
// English string and then to the key itself.
func T(lang, key string) string {
	if s, ok := tables[Normalize(lang)][key]; ok {
		return s
	}
	if s, ok := tables[DefaultLang][key]; ok {
		return s
	}
	return key
}

// Languages lists the supported language codes, English first.
func Languages() []string {
	codes := make([]string, 0, len(tables))
	codes = append(codes, DefaultLang)
	for code := range tables {
		if code != DefaultLang {
			codes = append(codes, code)
		}
	}
	return codes
}
