package messenger

type ButtonType string

const (
	ButtonTypeURL      ButtonType = "web_url"
	ButtonTypePostback ButtonType = "postback"
	ButtonTypeCall     ButtonType = "phone_number"
	ButtonTypeShare    ButtonType = "element_share"
	ButtonTypeBuy      ButtonType = "payment"
	ButtonTypeLogIn    ButtonType = "account_link"
	ButtonTypeLogOut   ButtonType = "account_unlink"
)

const (
	WebviewHeightCompact = "compact"
	WebviewHeightTall    = "tall"
	WebviewHeightFull    = "full"
)

const (
	ContentTypeText     = "text"
	ContentTypeLocation = "location"
)

const (
	AttachmentTypeImage = "image"
	AttachmentTypeFile  = "file"
	AttachmentTypeAudio = "audio"
	AttachmentTypeVideo = "video"
)

const (
	AttachmentTypeTemplate = "template"
	TemplateTypeButton     = "button"
)
