package ui

const themeStorageKey = "insertkit-theme"

// themeInitScript runs in <head> so the stored theme applies before first
// paint.
const themeInitScript = `(function(){
  var root=document.documentElement;
  var media=window.matchMedia('(prefers-color-scheme: dark)');
  var stored='';
  try { stored=localStorage.getItem('` + themeStorageKey + `')||''; } catch (_) {}
  if(stored!=='light'&&stored!=='dark'){ stored=media.matches?'dark':'light'; }
  root.setAttribute('data-theme',stored);
})();`

const themeBehaviorScript = `(function(){
  var root=document.documentElement;
  var toggle=document.getElementById('theme-toggle');
  if(!toggle){ return; }

  function sync(){
    var isDark=root.getAttribute('data-theme')==='dark';
    var label=isDark?'Switch to light theme':'Switch to dark theme';
    toggle.textContent=isDark?'Light mode':'Dark mode';
    toggle.setAttribute('aria-label', label);
    toggle.setAttribute('title', label);
  }

  toggle.addEventListener('click', function(){
    var next=root.getAttribute('data-theme')==='dark'?'light':'dark';
    root.setAttribute('data-theme',next);
    try { localStorage.setItem('` + themeStorageKey + `', next); } catch (_) {}
    sync();
  });

  sync();
})();`

// copyBehaviorScript wires every [data-copy-target] button to copy the text
// of the element it names.
const copyBehaviorScript = `(function(){
  document.addEventListener('click', function(e){
    var t=e.target;
    if(!(t instanceof Element)){ return; }
    var btn=t.closest('[data-copy-target]');
    if(!btn){ return; }
    var src=document.getElementById(btn.getAttribute('data-copy-target'));
    if(!src){ return; }
    var text=('value' in src)?src.value:src.textContent;
    if(!text){ return; }
    var original=btn.textContent;
    function done(){
      btn.textContent='Copied!';
      setTimeout(function(){ btn.textContent=original; }, 1500);
    }
    if(navigator.clipboard&&navigator.clipboard.writeText){
      navigator.clipboard.writeText(text).then(done, function(){});
      return;
    }
    var area=document.createElement('textarea');
    area.value=text;
    document.body.appendChild(area);
    area.select();
    try { document.execCommand('copy'); done(); } catch (_) {}
    document.body.removeChild(area);
  });
})();`
