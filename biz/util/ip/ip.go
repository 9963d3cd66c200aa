package ip

import (
	"encoding/hex"
	"net"
)

func ipv4() net.IP {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil
	}
	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() {
			if v4 := ipNet.IP.To4(); v4 != nil {
				return v4
			}
		}
	}
	return nil
}

func IPv4() string {
	if v4 := ipv4(); v4 != nil {
		return v4.String()
	}
	return ""
}

func IPv4Hex() string {
	if v4 := ipv4(); v4 != nil {
		return hex.EncodeToString(v4)
	}
	return "00000000"
}
