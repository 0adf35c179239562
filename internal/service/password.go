package service

import "golang.org/x/crypto/argon2"

func argon2Key(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}
