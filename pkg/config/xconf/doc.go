// Package xconf 基于 koanf 的配置加载。
//
// 支持 YAML 和 JSON，文件格式由扩展名推断（.yaml/.yml/.json），
// 字节数据需显式指定格式。Unmarshal 只覆盖配置中出现的字段，
// 调用前在目标结构体里填好默认值即可实现"缺省即默认"：
//
//	cfg := Settings{Log: LogSettings{Level: "info"}}
//	c, err := xconf.New("xpalctl.yaml")
//	if err != nil {
//		return err
//	}
//	if err := c.Unmarshal("", &cfg); err != nil {
//		return err
//	}
//
// 更复杂的查询直接使用 [Config.Client] 返回的 koanf 实例。
package xconf
