package constants

// 头像文件
const (
	AvatarPathPrefix = "/data/biolink/avatars/"
	AvatarPublicPath = "/avatars/"
	AvatarFileBase   = "avatar" // 固定的储存文件名（不含扩展名），保证路径稳定以便重复上传时覆盖
)
