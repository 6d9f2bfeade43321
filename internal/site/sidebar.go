package site

// sidebar is the literal sidebar in display order. Sidebar hands out copies.
var sidebar = []SidebarSection{
	{
		Text: "HTML+CSS",
		Items: []SidebarItem{
			{Text: "HTML", Link: "assets/HTML+CSS/HTML_Summary.md"},
			{Text: "CSS", Link: "assets/HTML+CSS/CSS_Summary.md"},
			{Text: "不常用知识点", Link: "assets/HTML+CSS/UncommonPoints.md"},
		},
	},
	{
		Text: "JavaScript",
		Items: []SidebarItem{
			{Text: "JS八股整理1", Link: "assets/JS/JS_Summary1.md"},
			{Text: "JS八股整理2", Link: "assets/JS/JS_Summary2.md"},
			{Text: "JS手写题总结", Link: "assets/JS/JS_Hand_Code.md"},
		},
	},
	{
		Text: "ES6",
		Items: []SidebarItem{
			{Text: "Proxy和Reflect", Link: "assets/JS/ES6/Proxy&Reflect.md"},
			{Text: "Iterator和forof", Link: "assets/JS/ES6/Iterator&forof.md"},
			{Text: "Promise", Link: "assets/JS/ES6/Promise.md"},
			{Text: "Promise代码输出题", Link: "assets/JS/ES6/Promise_Out.md"},
			{Text: "Class", Link: "assets/JS/ES6/Class.md"},
			{Text: "Module", Link: "assets/JS/ES6/Module.md"},
		},
	},
	{
		Text: "Vue",
		Items: []SidebarItem{
			{Text: "Vue基础", Link: "assets/Vue-notes/VueBasic.md"},
			{Text: "Vue进阶", Link: "assets/Vue-notes/VueAdvanced.md"},
			{Text: "Vue组件", Link: "assets/Vue-notes/VueComponent.md"},
			{Text: "Vue逻辑复用", Link: "assets/Vue-notes/VueLogicReuse.md"},
			{Text: "VueRouter", Link: "assets/Vue-notes/VueRouter.md"},
			{Text: "VuePinia", Link: "assets/Vue-notes/VuePinia.md"},
			{Text: "场景题", Link: "assets/Vue-notes/VueScene.md"},
		},
	},
	{
		Text: "计网",
		Items: []SidebarItem{
			{Text: "计网", Link: "assets/Cpt_Net/Cpt_Net_Basic.md"},
			{Text: "HTTP", Link: "assets/Cpt_Net/HTTP.md"},
			{Text: "TCP", Link: "assets/Cpt_Net/TCP.md"},
		},
	},
	{
		Text: "补充",
		Items: []SidebarItem{
			{Text: "Webpack和Vite", Link: "assets/Webpack&Vite.md"},
			{Text: "前端安全", Link: "assets/Front-end_Security.md"},
			{Text: "前端跨域", Link: "assets/CrossDomain.md"},
		},
	},
}

// Sidebar returns the site's sidebar sections in display order. Each call
// returns an independent copy.
func Sidebar() []SidebarSection {
	return cloneSections(sidebar)
}

func cloneSections(in []SidebarSection) []SidebarSection {
	if in == nil {
		return nil
	}
	out := make([]SidebarSection, len(in))
	for i, s := range in {
		out[i] = SidebarSection{Text: s.Text, Items: append([]SidebarItem(nil), s.Items...)}
	}
	return out
}
