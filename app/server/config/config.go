package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		PublicBaseURL         string // 对外访问的基础地址，用于拼接头像公开地址与邮箱确认链接
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
		AvatarDir             string // 头像文件的本地储存目录
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生会话 JWT ，更新会导致旧有会话失效，但不影响使用
	}
}
