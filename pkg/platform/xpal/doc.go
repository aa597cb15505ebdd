// Package xpal 把平台抽象层的全部能力收拢为一个可替换的接口 [Platform]。
//
// 各项能力的实现分布在 util 包中，按构建标签选择平台：
//
//   - 计时、休眠、调试输出：xsys
//   - 动态库：xdylib
//   - 文件系统查询、修改、枚举：xfile
//   - 工作目录、环境变量：xenv
//   - 子进程：xproc
//
// 直接调用这些包即可满足大多数场景。需要在测试中替换平台，
// 或者需要统一记录日志与指标时，依赖 [Platform]：
//
//	p := xpal.Instrument(xpal.Native(),
//		xpal.WithLogger(logger),
//		xpal.WithObserver(observer),
//	)
//	if err := p.CreateDir("/tmp/cache"); err != nil {
//		return err
//	}
//
// 测试中使用 xpalmock.MockPlatform（gomock）。
package xpal
