// 品牌/车型参考数据

package service

import (
	"autokeep/api/internal/model"
)

// carBrands 常见品牌及车型，用于创建车辆时的下拉选择
var carBrands = []model.CarBrand{
	{Name: "大众 Volkswagen", Models: []string{"朗逸", "速腾", "帕萨特", "迈腾", "高尔夫", "途观L", "探岳", "ID.4", "ID.3"}},
	{Name: "丰田 Toyota", Models: []string{"卡罗拉", "雷凌", "凯美瑞", "亚洲龙", "RAV4荣放", "威兰达", "汉兰达", "赛那"}},
	{Name: "本田 Honda", Models: []string{"思域", "雅阁", "CR-V", "皓影", "飞度", "XR-V", "缤智", "奥德赛"}},
	{Name: "比亚迪 BYD", Models: []string{"秦PLUS", "汉", "唐", "宋PLUS", "元PLUS", "海豚", "海豹", "驱逐舰05"}},
	{Name: "宝马 BMW", Models: []string{"3系", "5系", "X1", "X3", "X5", "i3", "iX3"}},
	{Name: "奔驰 Mercedes-Benz", Models: []string{"C级", "E级", "GLC", "GLA", "GLB", "A级"}},
	{Name: "奥迪 Audi", Models: []string{"A4L", "A6L", "A3", "Q3", "Q5L"}},
	{Name: "特斯拉 Tesla", Models: []string{"Model 3", "Model Y"}},
	{Name: "吉利 Geely", Models: []string{"帝豪", "星越L", "博越", "缤越", "星瑞"}},
	{Name: "长安 Changan", Models: []string{"CS75 PLUS", "CS55 PLUS", "逸动PLUS", "UNI-V"}},
}

// ListCarBrands 返回品牌/车型参考数据
func ListCarBrands() []model.CarBrand {
	out := make([]model.CarBrand, len(carBrands))
	copy(out, carBrands)
	return out
}
